package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/service"
)

func TestValidateRegisterParams(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		email    string
		fullName string
		password string
		role     string
		wantErr  error
	}{
		"valid": {
			email: "ana@example.com", fullName: "Ana", password: "secret-123", role: entity.RoleLider,
		},
		"missing email": {
			fullName: "Ana", password: "secret-123", role: entity.RoleLider,
			wantErr: entity.ErrIncorrectRequestBody,
		},
		"bad email format": {
			email: "not-an-email", fullName: "Ana", password: "secret-123", role: entity.RoleLider,
			wantErr: entity.ErrEmailInvalidFormat,
		},
		"email too long": {
			email: strings.Repeat("a", 250) + "@example.com", fullName: "Ana", password: "secret-123", role: entity.RoleLider,
			wantErr: entity.ErrEmailInvalidLen,
		},
		"password too short": {
			email: "ana@example.com", fullName: "Ana", password: "short", role: entity.RoleLider,
			wantErr: entity.ErrPasswordInvalidLen,
		},
		"password too long": {
			email: "ana@example.com", fullName: "Ana", password: strings.Repeat("x", 65), role: entity.RoleLider,
			wantErr: entity.ErrPasswordInvalidLen,
		},
		"unknown role": {
			email: "ana@example.com", fullName: "Ana", password: "secret-123", role: "superadmin",
			wantErr: entity.ErrUnknownRole,
		},
	}

	for name, tt := range tests {
		tt := tt

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := service.ValidateRegisterParams(tt.email, tt.fullName, tt.password, tt.role)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestValidateEventParams(t *testing.T) {
	t.Parallel()

	now := time.Now()

	valid := service.EventParams{
		Name:     "Feria",
		TypeID:   uuid.Must(uuid.NewV4()),
		StartsAt: now,
		EndsAt:   now.Add(time.Hour),
		Status:   entity.EventStatusPlanned,
		Budget:   decimal.RequireFromString("1000.00"),
	}

	require.NoError(t, service.ValidateEventParams(valid))

	noName := valid
	noName.Name = ""
	require.ErrorIs(t, service.ValidateEventParams(noName), entity.ErrIncorrectRequestBody)

	backwards := valid
	backwards.EndsAt = valid.StartsAt.Add(-time.Hour)
	require.ErrorIs(t, service.ValidateEventParams(backwards), entity.ErrIncorrectRequestBody)

	badStatus := valid
	badStatus.Status = "paused"
	require.ErrorIs(t, service.ValidateEventParams(badStatus), entity.ErrIncorrectRequestBody)

	negativeBudget := valid
	negativeBudget.Budget = decimal.RequireFromString("-1")
	require.ErrorIs(t, service.ValidateEventParams(negativeBudget), entity.ErrIncorrectRequestBody)
}

func TestValidateContractParams(t *testing.T) {
	t.Parallel()

	valid := service.ContractParams{
		Number:     "C-001",
		EventID:    uuid.Must(uuid.NewV4()),
		ProviderID: uuid.Must(uuid.NewV4()),
		Amount:     decimal.RequireFromString("500.00"),
		Status:     entity.ContractStatusDraft,
	}

	require.NoError(t, service.ValidateContractParams(valid))

	noNumber := valid
	noNumber.Number = ""
	require.ErrorIs(t, service.ValidateContractParams(noNumber), entity.ErrIncorrectRequestBody)

	zeroAmount := valid
	zeroAmount.Amount = decimal.Zero
	require.ErrorIs(t, service.ValidateContractParams(zeroAmount), entity.ErrIncorrectRequestBody)
}

func TestValidateListQuery(t *testing.T) {
	t.Parallel()

	err := service.ValidateListQuery(1, 20, entity.SortByName, entity.ASC, entity.SortByName)
	require.NoError(t, err)

	err = service.ValidateListQuery(0, 20, entity.SortByName, entity.ASC, entity.SortByName)
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)

	err = service.ValidateListQuery(1, 101, entity.SortByName, entity.ASC, entity.SortByName)
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)

	err = service.ValidateListQuery(1, 20, entity.SortByEmail, entity.ASC, entity.SortByName)
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)

	err = service.ValidateListQuery(1, 20, entity.SortByName, "sideways", entity.SortByName)
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}
