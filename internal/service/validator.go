package service

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateRegisterParams(email, fullName, password, role string) error {
	if email == "" || fullName == "" {
		return fmt.Errorf("%w: email and fullName are required", entity.ErrIncorrectRequestBody)
	}

	if len(email) > 255 {
		return entity.ErrEmailInvalidLen
	}

	if !emailRegexp.MatchString(email) {
		return entity.ErrEmailInvalidFormat
	}

	if len(password) < 8 || len(password) > 64 {
		return entity.ErrPasswordInvalidLen
	}

	if !entity.IsValidRole(role) {
		return fmt.Errorf("%w: %s", entity.ErrUnknownRole, role)
	}

	return nil
}

func ValidateEventParams(params EventParams) error {
	if params.Name == "" || params.TypeID.IsNil() {
		return fmt.Errorf("%w: name and typeId are required", entity.ErrIncorrectRequestBody)
	}

	if params.StartsAt.IsZero() || params.EndsAt.IsZero() {
		return fmt.Errorf("%w: startsAt and endsAt are required", entity.ErrIncorrectRequestBody)
	}

	if !params.EndsAt.After(params.StartsAt) {
		return fmt.Errorf("%w: endsAt must be after startsAt", entity.ErrIncorrectRequestBody)
	}

	if !params.Status.IsValid() {
		return fmt.Errorf("%w: invalid status %q", entity.ErrIncorrectRequestBody, params.Status)
	}

	if params.Budget.IsNegative() {
		return fmt.Errorf("%w: budget must not be negative", entity.ErrIncorrectRequestBody)
	}

	return nil
}

func ValidateContractParams(params ContractParams) error {
	if params.Number == "" || params.EventID.IsNil() || params.ProviderID.IsNil() {
		return fmt.Errorf("%w: number, eventId and providerId are required", entity.ErrIncorrectRequestBody)
	}

	if !params.Status.IsValid() {
		return fmt.Errorf("%w: invalid status %q", entity.ErrIncorrectRequestBody, params.Status)
	}

	if !params.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", entity.ErrIncorrectRequestBody)
	}

	return nil
}

func ValidateResourceParams(params ResourceParams) error {
	if params.Name == "" || params.TypeID.IsNil() {
		return fmt.Errorf("%w: name and typeId are required", entity.ErrIncorrectRequestBody)
	}

	if params.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", entity.ErrIncorrectRequestBody)
	}

	if params.UnitCost.IsNegative() {
		return fmt.Errorf("%w: unitCost must not be negative", entity.ErrIncorrectRequestBody)
	}

	if !params.Status.IsValid() {
		return fmt.Errorf("%w: invalid status %q", entity.ErrIncorrectRequestBody, params.Status)
	}

	return nil
}

func ValidateProviderParams(params ProviderParams) error {
	if params.Name == "" || params.TypeID.IsNil() {
		return fmt.Errorf("%w: name and typeId are required", entity.ErrIncorrectRequestBody)
	}

	if params.Email != "" && !emailRegexp.MatchString(params.Email) {
		return entity.ErrEmailInvalidFormat
	}

	return nil
}

func ValidatePersonnelParams(params PersonnelParams) error {
	if params.FullName == "" || params.TypeID.IsNil() {
		return fmt.Errorf("%w: fullName and typeId are required", entity.ErrIncorrectRequestBody)
	}

	if params.Email != "" && !emailRegexp.MatchString(params.Email) {
		return entity.ErrEmailInvalidFormat
	}

	return nil
}

func ValidateTaxonomyParams(params TaxonomyParams) error {
	if !params.Kind.IsValid() {
		return fmt.Errorf("%w: unknown taxonomy kind %q", entity.ErrIncorrectRequestBody, params.Kind)
	}

	if params.Name == "" {
		return fmt.Errorf("%w: name is required", entity.ErrIncorrectRequestBody)
	}

	return nil
}

func ValidateListQuery(page, limit uint64, sortBy entity.SortBy, orderBy entity.OrderBy, allowed ...entity.SortBy) error {
	if page == 0 || limit == 0 || limit > 100 {
		return fmt.Errorf("%w: page and limit must be positive, limit at most 100", entity.ErrIncorrectRequestBody)
	}

	if !slices.Contains(allowed, sortBy) {
		return fmt.Errorf("%w: invalid sortBy param: %s", entity.ErrIncorrectRequestBody, sortBy)
	}

	if !orderBy.IsValid() {
		return fmt.Errorf("%w: invalid sortOrder param: %s", entity.ErrIncorrectRequestBody, orderBy)
	}

	return nil
}
