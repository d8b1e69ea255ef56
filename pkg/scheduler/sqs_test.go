package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestSQSScheduler(t *testing.T) {
	ctx := context.Background()
	msg := SettlementMessage{PersonID: "person-1", BookingID: "booking-1"}

	t.Run("Sends The Settlement Message", func(t *testing.T) {
		client := &fakeSQS{}
		sched := NewSQSScheduler(client, "https://sqs.example/queue")

		require.NoError(t, sched.ScheduleSettlement(ctx, msg, 15*time.Minute))

		require.Len(t, client.inputs, 1)
		input := client.inputs[0]
		assert.Equal(t, "https://sqs.example/queue", *input.QueueUrl)
		assert.JSONEq(t, `{"person_id":"person-1","booking_id":"booking-1"}`, *input.MessageBody)
		assert.Equal(t, int32(900), input.DelaySeconds)
	})

	t.Run("Clamps The Delay", func(t *testing.T) {
		client := &fakeSQS{}
		sched := NewSQSScheduler(client, "https://sqs.example/queue")

		require.NoError(t, sched.ScheduleSettlement(ctx, msg, 2*time.Hour))
		require.NoError(t, sched.ScheduleSettlement(ctx, msg, -time.Minute))

		require.Len(t, client.inputs, 2)
		assert.Equal(t, int32(900), client.inputs[0].DelaySeconds)
		assert.Equal(t, int32(0), client.inputs[1].DelaySeconds)
	})

	t.Run("Send Error", func(t *testing.T) {
		client := &fakeSQS{err: assert.AnError}
		sched := NewSQSScheduler(client, "https://sqs.example/queue")

		err := sched.ScheduleSettlement(ctx, msg, 0)
		assert.ErrorContains(t, err, "failed to send message to SQS")
	})
}
