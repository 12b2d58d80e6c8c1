package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Settings is the singleton configuration record of the business
type Settings struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Company     CompanyProfile `gorm:"embedded;embeddedPrefix:company_" json:"company"`
	Preferences Preferences    `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
	Security    Security       `gorm:"embedded;embeddedPrefix:security_" json:"security"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CompanyProfile holds the business details printed on bills
type CompanyProfile struct {
	Name    string `gorm:"size:255" json:"name"`
	Email   string `gorm:"size:255" json:"email"`
	Phone   string `gorm:"size:50" json:"phone"`
	Address string `gorm:"type:text" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:100" json:"state"`
	Country string `gorm:"size:100" json:"country"`
	Website string `gorm:"size:255" json:"website"`
	TaxID   string `gorm:"size:100" json:"tax_id"`
}

type Preferences struct {
	Currency string `gorm:"size:3;default:'USD'" json:"currency"`
	Language string `gorm:"size:20;default:'en'" json:"language"`
}

// Security holds the administrator credentials
type Security struct {
	PasswordHash      string     `gorm:"size:255" json:"-"`
	PasswordChangedAt *time.Time `json:"password_changed_at,omitempty"`
}

// BeforeCreate generates a UUID before creating the settings record
func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Settings model
func (Settings) TableName() string {
	return "settings"
}

func (s *Settings) Clone() *Settings {
	out := *s
	out.Security.PasswordChangedAt = cloneTime(s.Security.PasswordChangedAt)
	return &out
}

// DefaultSettings returns the factory settings for the given administrator email
func DefaultSettings(adminEmail string) *Settings {
	return &Settings{
		Company: CompanyProfile{
			Name:  "My Business",
			Email: adminEmail,
		},
		Preferences: Preferences{
			Currency: "USD",
			Language: "en",
		},
	}
}
