package models

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// BookingType identifies the origin of a settled ledger entry.
type BookingType string

const (
	SEPA_CREDIT_TRANSFER BookingType = "SEPA_CREDIT_TRANSFER"
	SEPA_DIRECT_DEBIT    BookingType = "SEPA_DIRECT_DEBIT"
	CARD_TRANSACTION     BookingType = "CARD_TRANSACTION"
)

// BookingStatus is the lifecycle state of a queued booking. Only accepted
// queued bookings count toward the available balance.
type BookingStatus string

const (
	BookingStatusAccepted BookingStatus = "accepted"
	BookingStatusRejected BookingStatus = "rejected"
)

// TransactionType is the card-scheme transaction type carried in card meta info.
type TransactionType string

const (
	PURCHASE           TransactionType = "PURCHASE"
	CASH_ATM           TransactionType = "CASH_ATM"
	CASH_MANUAL        TransactionType = "CASH_MANUAL"
	CREDIT_PRESENTMENT TransactionType = "CREDIT_PRESENTMENT"
)

// CardStatus defines the possible states of a card.
type CardStatus string

const (
	ACTIVE             CardStatus = "ACTIVE"
	INACTIVE           CardStatus = "INACTIVE"
	BLOCKED            CardStatus = "BLOCKED"
	BLOCKED_BY_SOLARIS CardStatus = "BLOCKED_BY_SOLARIS"
	PROCESSING         CardStatus = "PROCESSING"
	CLOSED             CardStatus = "CLOSED"
)

// POSEntryMode describes how a card payment was presented. Every mode except
// CARD_NOT_PRESENT counts as card-present for limit purposes.
type POSEntryMode string

const (
	CONTACTLESS      POSEntryMode = "CONTACTLESS"
	CHIP_AND_PIN     POSEntryMode = "CHIP_AND_PIN"
	MAGNETIC_STRIPE  POSEntryMode = "MAGNETIC_STRIPE"
	CARD_NOT_PRESENT POSEntryMode = "CARD_NOT_PRESENT"
	PHONE            POSEntryMode = "PHONE"
)

// CardAuthorizationDeclineReason enumerates the causes attached to a declined
// card authorization webhook.
type CardAuthorizationDeclineReason string

const (
	CARD_BLOCKED       CardAuthorizationDeclineReason = "CARD_BLOCKED"
	CARD_INACTIVE      CardAuthorizationDeclineReason = "CARD_INACTIVE"
	INSUFFICIENT_FUNDS CardAuthorizationDeclineReason = "INSUFFICIENT_FUNDS"
	FRAUD_SUSPECTED    CardAuthorizationDeclineReason = "FRAUD_SUSPECTED"

	CARD_PRESENT_AMOUNT_LIMIT_REACHED_DAILY       CardAuthorizationDeclineReason = "CARD_PRESENT_AMOUNT_LIMIT_REACHED_DAILY"
	CARD_PRESENT_USE_LIMIT_REACHED_DAILY          CardAuthorizationDeclineReason = "CARD_PRESENT_USE_LIMIT_REACHED_DAILY"
	CARD_NOT_PRESENT_AMOUNT_LIMIT_REACHED_DAILY   CardAuthorizationDeclineReason = "CARD_NOT_PRESENT_AMOUNT_LIMIT_REACHED_DAILY"
	CARD_NOT_PRESENT_USE_LIMIT_REACHED_DAILY      CardAuthorizationDeclineReason = "CARD_NOT_PRESENT_USE_LIMIT_REACHED_DAILY"
	CARD_PRESENT_AMOUNT_LIMIT_REACHED_MONTHLY     CardAuthorizationDeclineReason = "CARD_PRESENT_AMOUNT_LIMIT_REACHED_MONTHLY"
	CARD_PRESENT_USE_LIMIT_REACHED_MONTHLY        CardAuthorizationDeclineReason = "CARD_PRESENT_USE_LIMIT_REACHED_MONTHLY"
	CARD_NOT_PRESENT_AMOUNT_LIMIT_REACHED_MONTHLY CardAuthorizationDeclineReason = "CARD_NOT_PRESENT_AMOUNT_LIMIT_REACHED_MONTHLY"
	CARD_NOT_PRESENT_USE_LIMIT_REACHED_MONTHLY    CardAuthorizationDeclineReason = "CARD_NOT_PRESENT_USE_LIMIT_REACHED_MONTHLY"
)

// Amount is a monetary value in minor units (cents).
type Amount struct {
	Value    int64  `json:"value"`
	Unit     string `json:"unit,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// Address is a postal address attached to a person.
type Address struct {
	Line1      string `json:"line_1,omitempty"`
	Line2      string `json:"line_2,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Person is a customer record: identity fields plus the owned checking
// account, the settled transaction history and queued transfers. A person
// exclusively owns its account; the account exclusively owns its reservation
// and card lists.
type Person struct {
	ID               string   `json:"id"`
	Salutation       string   `json:"salutation,omitempty"`
	FirstName        string   `json:"first_name,omitempty"`
	LastName         string   `json:"last_name,omitempty"`
	Email            string   `json:"email,omitempty"`
	MobileNumber     string   `json:"mobile_number,omitempty"`
	BirthDate        string   `json:"birth_date,omitempty"`
	BirthCity        string   `json:"birth_city,omitempty"`
	BirthCountry     string   `json:"birth_country,omitempty"`
	Nationality      string   `json:"nationality,omitempty"`
	EmploymentStatus string   `json:"employment_status,omitempty"`
	JobTitle         string   `json:"job_title,omitempty"`
	Address          *Address `json:"address,omitempty"`
	ContactAddress   *Address `json:"contact_address,omitempty"`

	Account        *Account `json:"account,omitempty"`
	BillingAccount *Account `json:"billing_account,omitempty"`

	// Settled ledger entries, append-only; insertion order is chronological.
	Transactions []Booking `json:"transactions"`
	// Pending transfers awaiting settlement.
	QueuedBookings []Booking    `json:"queuedBookings"`
	FraudCases     []FraudCase  `json:"fraudCases"`
	TimedOrders    []TimedOrder `json:"timedOrders"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Normalize replaces nil collections with empty ones so that loaded records
// are safe to mutate and marshal back with the expected shape.
func (p *Person) Normalize() {
	if p.Transactions == nil {
		p.Transactions = []Booking{}
	}
	if p.QueuedBookings == nil {
		p.QueuedBookings = []Booking{}
	}
	if p.FraudCases == nil {
		p.FraudCases = []FraudCase{}
	}
	if p.TimedOrders == nil {
		p.TimedOrders = []TimedOrder{}
	}
}

// FindCardData locates a card on the person's account by card id.
func (p *Person) FindCardData(cardID string) *CardData {
	if p.Account == nil {
		return nil
	}
	for i := range p.Account.Cards {
		if p.Account.Cards[i].Card.ID == cardID {
			return &p.Account.Cards[i]
		}
	}
	return nil
}

// Account is a person's checking account aggregate. Balance and
// AvailableBalance are derived fields, recomputed on every save.
type Account struct {
	ID            string `json:"id"`
	IBAN          string `json:"iban,omitempty"`
	BIC           string `json:"bic,omitempty"`
	Type          string `json:"type,omitempty"`
	PersonID      string `json:"person_id,omitempty"`
	SenderName    string `json:"sender_name,omitempty"`
	LockingStatus string `json:"locking_status,omitempty"`

	Balance          Amount  `json:"balance"`
	AvailableBalance Amount  `json:"available_balance"`
	AccountLimit     *Amount `json:"account_limit,omitempty"`

	Reservations      ReservationSet `json:"reservations"`
	FraudReservations ReservationSet `json:"fraudReservations"`
	Cards             []CardData     `json:"cards,omitempty"`

	// Accrued overdraft interest in cents.
	OverdraftInterest int64 `json:"overdraftInterest,omitempty"`
}

// Booking is a settled (or, while queued, pending) ledger entry. Immutable
// once created.
type Booking struct {
	ID            string               `json:"id"`
	BookingType   BookingType          `json:"booking_type,omitempty"`
	Amount        Amount               `json:"amount"`
	Description   string               `json:"description,omitempty"`
	BookingDate   openapi_types.Date   `json:"booking_date"`
	ValutaDate    openapi_types.Date   `json:"valuta_date"`
	RecipientBIC  string               `json:"recipient_bic,omitempty"`
	RecipientIBAN string               `json:"recipient_iban,omitempty"`
	RecipientName string               `json:"recipient_name,omitempty"`
	SenderBIC     string               `json:"sender_bic,omitempty"`
	SenderIBAN    string               `json:"sender_iban,omitempty"`
	SenderName    string               `json:"sender_name,omitempty"`
	EndToEndID    string               `json:"end_to_end_id,omitempty"`
	Reference     string               `json:"reference,omitempty"`
	TransactionID string               `json:"transaction_id,omitempty"`
	Status        BookingStatus        `json:"status,omitempty"`
	MetaInfo      *TransactionMetaInfo `json:"meta_info,omitempty"`
}

// CardData pairs a card with its secret details and limits.
type CardData struct {
	Card        Card        `json:"card"`
	CardDetails CardDetails `json:"cardDetails"`
}

// Card is the client-visible part of a card.
type Card struct {
	ID             string              `json:"id"`
	Type           string              `json:"type,omitempty"`
	Status         CardStatus          `json:"status"`
	ExpirationDate *openapi_types.Date `json:"expiration_date,omitempty"`
	PersonID       string              `json:"person_id,omitempty"`
	AccountID      string              `json:"account_id,omitempty"`
	NewCardOrdered bool                `json:"new_card_ordered"`
	Representation *CardRepresentation `json:"representation,omitempty"`
}

// CardRepresentation is the embossed/display form of a card.
type CardRepresentation struct {
	Line1                   string `json:"line_1,omitempty"`
	FormattedExpirationDate string `json:"formatted_expiration_date,omitempty"`
	MaskedPan               string `json:"masked_pan,omitempty"`
}

// CardDetails holds the sensitive card data and the configured spend limits.
type CardDetails struct {
	CardNumber           string        `json:"cardNumber,omitempty"`
	CVV                  string        `json:"cvv,omitempty"`
	CardPresentLimits    *CardLimits   `json:"cardPresentLimits,omitempty"`
	CardNotPresentLimits *CardLimits   `json:"cardNotPresentLimits,omitempty"`
	Settings             *CardSettings `json:"settings,omitempty"`
}

// CardSettings are per-card feature toggles.
type CardSettings struct {
	ContactlessEnabled bool `json:"contactless_enabled"`
}

// CardLimits groups the daily and monthly limits for one presence axis.
type CardLimits struct {
	Daily   CardLimit `json:"daily"`
	Monthly CardLimit `json:"monthly"`
}

// CardLimit caps a usage window. A usage exactly at the limit is still
// allowed; only a strictly greater usage breaches it.
type CardLimit struct {
	MaxAmountCents  int64 `json:"max_amount_cents"`
	MaxTransactions int64 `json:"max_transactions"`
}

// FraudCase records a suspected-fraud hold on a reservation.
type FraudCase struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id,omitempty"`
}

// TimedOrder is a transfer scheduled for a future execution date.
type TimedOrder struct {
	ID        string              `json:"id"`
	ExecuteAt *openapi_types.Date `json:"execute_at,omitempty"`
	Booking   *Booking            `json:"booking,omitempty"`
}
