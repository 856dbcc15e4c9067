package service

import "showtracker/model"

func requireUser(identity *model.Identity) (string, error) {
	if !identity.Authenticated() {
		return "", model.ErrUnauthenticated
	}
	return identity.UserId, nil
}
