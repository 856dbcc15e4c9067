package service

import (
	"context"
	"showtracker/model"

	"firebase.google.com/go/v4/auth"
)

type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(client *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

//------------------------------------------
//------------------------------------------

func (f *FirebaseVerifier) VerifyIdToken(ctx context.Context, idToken string) (*model.Identity, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	identity := &model.Identity{
		UserId:   token.UID,
		Role:     model.UserRole,
		Provider: model.FirebaseProvider,
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.DisplayName = name
	}
	return identity, nil
}
