package handler

import (
	"github.com/google/uuid"

	"github.com/yourplaces/places-server/internal/model"
)

// URLResolver maps stored image keys to public URLs.
type URLResolver interface {
	URL(key string) string
}

// UserView is the client-facing user shape. The password hash never leaves
// the service layer.
type UserView struct {
	ID     uuid.UUID   `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Image  string      `json:"image"`
	Places []uuid.UUID `json:"places"`
}

// PlaceView is the client-facing place shape.
type PlaceView struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Address     string            `json:"address"`
	Location    model.Coordinates `json:"location"`
	Image       string            `json:"image"`
	Creator     uuid.UUID         `json:"creator"`
}

func newUserView(user model.User, urls URLResolver) UserView {
	places := user.Places
	if places == nil {
		places = []uuid.UUID{}
	}
	return UserView{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Image:  urls.URL(user.Image),
		Places: places,
	}
}

func newUserViews(users []model.User, urls URLResolver) []UserView {
	views := make([]UserView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user, urls))
	}
	return views
}

func newPlaceView(place model.Place, urls URLResolver) PlaceView {
	return PlaceView{
		ID:          place.ID,
		Title:       place.Title,
		Description: place.Description,
		Address:     place.Address,
		Location:    place.Location,
		Image:       urls.URL(place.Image),
		Creator:     place.Creator,
	}
}

func newPlaceViews(places []model.Place, urls URLResolver) []PlaceView {
	views := make([]PlaceView, 0, len(places))
	for _, place := range places {
		views = append(views, newPlaceView(place, urls))
	}
	return views
}
