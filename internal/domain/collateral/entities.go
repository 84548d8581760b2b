package collateral

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("collateral not found")
	ErrInvalidTransition = errors.New("invalid collateral status transition")
)

type Status string

// Status only ever moves forward: Pending → Verified → Released.
const (
	StatusPending  Status = "Pending"
	StatusVerified Status = "Verified"
	StatusReleased Status = "Released"
)

type Collateral struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	CollateralID  string `gorm:"column:collateral_id;type:char(32);uniqueIndex:ux_collaterals_collateral_id" json:"collateral_id"`
	UserID        uint64 `gorm:"column:user_id;not null;index" json:"-"`
	ApplicationID uint64 `gorm:"column:application_id;not null;uniqueIndex:ux_collaterals_application" json:"-"`

	CollateralType string  `gorm:"column:collateral_type;size:100" json:"collateral_type"`
	Value          float64 `gorm:"column:collateral_value;type:decimal(10,2)" json:"collateral_value"`
	Description    string  `gorm:"column:description;type:text" json:"description"`
	Status         Status  `gorm:"column:status;type:enum('Pending','Verified','Released');default:'Pending'" json:"status"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Collateral) TableName() string { return "collaterals" }
