package model

import "time"

type Role string

const (
	UserRole  Role = "user"
	AdminRole Role = "admin"
)

type Account struct {
	Id           string    `gorm:"column:id;type:text;primaryKey;" json:"id"`
	Email        string    `gorm:"column:email;type:text;not null;uniqueIndex:Account_email_key;" json:"email"`
	PasswordHash string    `gorm:"column:passwordHash;type:text;not null;" json:"-"`
	DisplayName  string    `gorm:"column:displayName;type:text;not null;default:'';" json:"displayName"`
	Role         Role      `gorm:"column:role;type:text;not null;default:'user';" json:"role"`
	CreatedAt    time.Time `gorm:"column:createdAt;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updatedAt;type:timestamp(3);not null;" json:"updatedAt"`
}

func (Account) TableName() string {
	return "Account"
}

//---------------------------------------
//---------------------------------------

type IdentityProvider string

const (
	LocalProvider    IdentityProvider = "local"
	FirebaseProvider IdentityProvider = "firebase"
)

// Identity is the authenticated caller as resolved from a token.
type Identity struct {
	UserId      string           `json:"userId"`
	Email       string           `json:"email"`
	DisplayName string           `json:"displayName"`
	Role        Role             `json:"role"`
	SessionId   string           `json:"-"`
	Provider    IdentityProvider `json:"provider"`
}

func (i *Identity) Authenticated() bool {
	return i != nil && i.UserId != ""
}

// AuthorName is the public name attached to reviews.
func (i *Identity) AuthorName() string {
	if i == nil || i.DisplayName == "" {
		return "Anonymous"
	}
	return i.DisplayName
}

//---------------------------------------
//---------------------------------------

type RegisterReq struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshReq struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type TokenRes struct {
	AccessToken      string   `json:"accessToken"`
	AccessExpiresAt  int64    `json:"accessExpiresAt"`
	RefreshToken     string   `json:"refreshToken"`
	RefreshExpiresAt int64    `json:"refreshExpiresAt"`
	Account          *Account `json:"account"`
}
