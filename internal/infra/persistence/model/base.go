// Package model holds the GORM table mappings. Entities never leak GORM tags;
// repositories convert between the two.
package model

import (
	"github.com/google/uuid"
)

// ensureID assigns a time-ordered UUID when the caller did not set one.
func ensureID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}
	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}

// All lists every model in dependency order.
func All() []any {
	return []any{
		&ProductModel{},
		&BarcodeItemModel{},
		&CustomerModel{},
		&DealerModel{},
		&ActivationModel{},
		&AuditLogModel{},
		&UserAccountModel{},
		&StaffUserModel{},
		&OTPChallengeModel{},
		&RefreshTokenModel{},
		&CustomerDeviceModel{},
	}
}
