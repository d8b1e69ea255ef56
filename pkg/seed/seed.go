// Package seed loads the built-in fixture persons. The IDs and amounts are
// part of the client integration contract and must not change.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/bankmock/bankmock/pkg/models"
	"github.com/bankmock/bankmock/pkg/storage"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Apply saves every fixture person, recomputing balances on the way in like
// any other save.
func Apply(ctx context.Context, store storage.PersonWriter) error {
	for _, person := range Persons() {
		if err := store.SavePerson(ctx, person, storage.SaveOptions{}); err != nil {
			return fmt.Errorf("failed to seed person %s: %w", person.ID, err)
		}
	}
	return nil
}

// Persons returns fresh copies of the fixture persons.
func Persons() []*models.Person {
	return []*models.Person{
		kontistGmbH(),
		theresaKlemm(),
	}
}

func day(year int, month time.Month, d int) openapi_types.Date {
	return openapi_types.Date{Time: time.Date(year, month, d, 0, 0, 0, 0, time.UTC)}
}

func kontistGmbH() *models.Person {
	return &models.Person{
		ID:               "mockpersonkontistgmbh",
		Salutation:       "MR",
		FirstName:        "Kontist",
		LastName:         "GmbH",
		Email:            "kontistgmbh@mocksolaris.example.com",
		MobileNumber:     "+49123123223",
		BirthDate:        "1998-01-01",
		BirthCity:        "Copenhagen",
		BirthCountry:     "DE",
		Nationality:      "DE",
		EmploymentStatus: "FREELANCER",
		Address: &models.Address{
			Line1:      "Torstraße 177",
			PostalCode: "10155",
			City:       "Berlin",
			Country:    "DE",
		},
		Account: &models.Account{
			ID:         "solarisKontistAccountId",
			IBAN:       "DE58110101002263909949",
			BIC:        "SOBKDEBBXXX",
			Type:       "CHECKING_BUSINESS",
			PersonID:   "mockpersonkontistgmbh",
			SenderName: "unknown",
		},
		BillingAccount: &models.Account{
			ID:         "mockaccount_billing_id",
			IBAN:       "DE58110101002263909949",
			BIC:        "SOBKDEBBXXX",
			Type:       "CHECKING_BUSINESS",
			PersonID:   "mockpersonkontistgmbh",
			SenderName: "unknown",
		},
		Transactions: []models.Booking{
			{
				ID:            "e0492abb-87fd-42a2-9303-708026b90c8e",
				Amount:        models.Amount{Value: 3000, Currency: "EUR"},
				Description:   "Money added via 5199",
				BookingDate:   day(2017, time.September, 25),
				ValutaDate:    day(2017, time.December, 24),
				RecipientBIC:  "SOBKDEBBXXX",
				RecipientIBAN: "ES0254451416043911355892",
				RecipientName: "Kontist GmbH",
				SenderBIC:     "SOBKDEBBXXX",
				SenderIBAN:    "DE00000000002901",
				SenderName:    "Alexander Baatz Retirement Fund",
			},
			{
				ID:            "1a6a180f-5e84-4d58-9cb6-aec77fb09d6f",
				Amount:        models.Amount{Value: 20000, Currency: "EUR"},
				Description:   "Money added via 5199",
				BookingDate:   day(2017, time.September, 25),
				ValutaDate:    day(2017, time.December, 24),
				RecipientBIC:  "SOBKDEBBXXX",
				RecipientIBAN: "ES0254451416043911355892",
				RecipientName: "Kontist GmbH",
				SenderBIC:     "SOBKDEBBXXX",
				SenderIBAN:    "DE00000000002901",
				SenderName:    "Alexander Baatz Retirement Fund",
			},
			{
				ID:            "e8b88092-c378-43f5-ac8d-1728a1dc716f",
				BookingType:   models.SEPA_CREDIT_TRANSFER,
				Amount:        models.Amount{Value: 10000, Unit: "cents", Currency: "EUR"},
				Description:   "From Michael Patrick",
				RecipientBIC:  "SOBKDEBBXXX",
				RecipientIBAN: "DE82581382120668019499",
				RecipientName: "Michael Patrick",
				Reference:     "referenceId2",
				BookingDate:   day(2023, time.March, 6),
				ValutaDate:    day(2023, time.March, 6),
			},
			{
				ID:            "d4e31dc0-450a-456d-8b13-ace504b9758a",
				BookingType:   models.SEPA_CREDIT_TRANSFER,
				Amount:        models.Amount{Value: -7500, Unit: "cents", Currency: "EUR"},
				Description:   "To John Braun",
				RecipientIBAN: "DE82581382120668019499",
				RecipientName: "John Braun",
				Reference:     "referenceId3",
				BookingDate:   day(2023, time.March, 6),
				ValutaDate:    day(2023, time.March, 6),
			},
		},
		QueuedBookings: []models.Booking{
			{
				ID:            "cff1e7e4-d9f1-4c95-b983-262a066767d5",
				BookingType:   models.SEPA_CREDIT_TRANSFER,
				Amount:        models.Amount{Value: -5000, Unit: "cents", Currency: "EUR"},
				Description:   "description here 1",
				RecipientIBAN: "DE82581382120668019499",
				RecipientName: "recipient name here",
				Reference:     "referenceId 1",
				BookingDate:   day(2023, time.March, 6),
				ValutaDate:    day(2023, time.March, 6),
			},
		},
	}
}

func theresaKlemm() *models.Person {
	createdAt := time.Date(2023, time.March, 3, 14, 45, 54, 884000000, time.UTC)
	cardExpiration := day(2026, time.March, 3)

	return &models.Person{
		ID:               "mock2ae44519fa2cc8e847e21221aa55b718",
		Salutation:       "MS",
		FirstName:        "FirstName",
		LastName:         "LastName",
		Email:            "theresa@klemm.com",
		MobileNumber:     "+15550101",
		BirthDate:        "1985-12-14",
		BirthCity:        "Berlin",
		BirthCountry:     "DE",
		Nationality:      "DE",
		EmploymentStatus: "EMPLOYED",
		JobTitle:         "Programmer",
		Address: &models.Address{
			Line1:      "Thinslices",
			PostalCode: "10155",
			City:       "Berlin",
			Country:    "DE",
		},
		ContactAddress: &models.Address{
			Line1:      "Ostenderstraße",
			Line2:      " 70",
			PostalCode: "13353",
			City:       "Berlin",
			Country:    "DE",
			State:      "BE",
		},
		Account: &models.Account{
			ID:            "817b55aa12212e748e8cc2af91544ea2kcom",
			IBAN:          "DE82581382120668019499",
			BIC:           "SOBKDEBBXXX",
			Type:          "CHECKING_BUSINESS",
			PersonID:      "mock2ae44519fa2cc8e847e21221aa55b718",
			SenderName:    "bank-mock-1",
			LockingStatus: "NO_BLOCK",
			AccountLimit:  &models.Amount{Value: 0, Unit: "cents", Currency: "EUR"},
			Cards: []models.CardData{
				{
					Card: models.Card{
						ID:             "a3c40d4aa59943ccb9bc0443d827e8ca",
						Type:           "VIRTUAL_VISA_BUSINESS_DEBIT",
						Status:         models.ACTIVE,
						ExpirationDate: &cardExpiration,
						PersonID:       "mock2ae44519fa2cc8e847e21221aa55b718",
						AccountID:      "817b55aa12212e748e8cc2af91544ea2kcom",
						Representation: &models.CardRepresentation{
							Line1:                   "MICHAEL JACKSON",
							FormattedExpirationDate: "03/26",
							MaskedPan:               "2702********8335",
						},
					},
					CardDetails: models.CardDetails{
						CardNumber: "2702387978048335",
						CVV:        "577",
						CardPresentLimits: &models.CardLimits{
							Daily:   models.CardLimit{MaxAmountCents: 500000, MaxTransactions: 10},
							Monthly: models.CardLimit{MaxAmountCents: 1000000, MaxTransactions: 100},
						},
						CardNotPresentLimits: &models.CardLimits{
							Daily:   models.CardLimit{MaxAmountCents: 500000, MaxTransactions: 10},
							Monthly: models.CardLimit{MaxAmountCents: 1000000, MaxTransactions: 100},
						},
						Settings: &models.CardSettings{ContactlessEnabled: true},
					},
				},
			},
			OverdraftInterest: 20,
		},
		Transactions: []models.Booking{
			{
				ID:            "e8b88092-c378-43f5-ac8d-1728a1dc716f",
				BookingType:   models.SEPA_CREDIT_TRANSFER,
				Amount:        models.Amount{Value: -35000, Unit: "cents", Currency: "EUR"},
				Description:   "description here 2",
				RecipientIBAN: "DE82581382120668019499",
				RecipientName: "recipient name here",
				Reference:     "referenceId 2",
				BookingDate:   day(2023, time.March, 6),
				ValutaDate:    day(2023, time.March, 6),
			},
			{
				ID:            "d4e31dc0-450a-456d-8b13-ace504b9758a",
				BookingType:   models.SEPA_CREDIT_TRANSFER,
				Amount:        models.Amount{Value: -700, Unit: "cents", Currency: "EUR"},
				Description:   "description here 3",
				RecipientIBAN: "DE82581382120668019499",
				RecipientName: "recipient name here",
				Reference:     "referenceId 3",
				BookingDate:   day(2023, time.March, 6),
				ValutaDate:    day(2023, time.March, 6),
			},
		},
		CreatedAt: &createdAt,
	}
}
