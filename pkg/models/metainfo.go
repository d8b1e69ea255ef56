package models

import (
	"bytes"
	"encoding/json"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// TransactionMetaInfo is the structured form of a booking's or reservation's
// meta_info. On the wire it is a JSON object serialized into a string; in
// memory it is parsed exactly once at the boundary. The only variant currently carried is card-merchant detail.
type TransactionMetaInfo struct {
	Cards *CardMetaInfo `json:"cards,omitempty"`
}

// CardMetaInfo carries the card-scheme detail of a card-originated entry.
type CardMetaInfo struct {
	CardID          string             `json:"card_id"`
	Merchant        CardMerchant       `json:"merchant"`
	OriginalAmount  OriginalAmount     `json:"original_amount"`
	POSEntryMode    POSEntryMode       `json:"pos_entry_mode"`
	TraceID         *string            `json:"trace_id"`
	TransactionDate openapi_types.Date `json:"transaction_date"`
	TransactionTime *time.Time         `json:"transaction_time"`
	TransactionType TransactionType    `json:"transaction_type"`
}

// CardMerchant describes the merchant side of a card transaction.
type CardMerchant struct {
	CountryCode  string `json:"country_code"`
	CategoryCode string `json:"category_code"`
	Name         string `json:"name"`
	Town         string `json:"town"`
}

// OriginalAmount is the pre-conversion amount of a card transaction together
// with the rate it was converted at.
type OriginalAmount struct {
	Currency string  `json:"currency"`
	Value    int64   `json:"value"`
	FxRate   float64 `json:"fx_rate"`
}

// metaInfoAlias avoids recursing into the custom JSON methods below.
type metaInfoAlias TransactionMetaInfo

// MarshalJSON encodes the meta info as a string containing the JSON object.
func (m TransactionMetaInfo) MarshalJSON() ([]byte, error) {
	inner, err := json.Marshal(metaInfoAlias(m))
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(inner))
}

// UnmarshalJSON accepts null, a JSON object, or a string containing a JSON
// object (the string form is what stored documents carry).
func (m *TransactionMetaInfo) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		data = []byte(inner)
	}
	return json.Unmarshal(data, (*metaInfoAlias)(m))
}

// CardMeta returns the card variant, or nil for non-card entries.
func (m *TransactionMetaInfo) CardMeta() *CardMetaInfo {
	if m == nil {
		return nil
	}
	return m.Cards
}
