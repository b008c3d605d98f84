package routes

import "net/http"

const (
	ROOT = "/"
	API  = ROOT + "api"

	BOOKS       = API + "/books" // keyed by ?id=
	BOOKS_ALL   = BOOKS + "/all"
	BOOKS_POST  = BOOKS + "/post"
	GET_BOOKS   = http.MethodGet + " " + BOOKS_ALL
	GET_BOOK    = http.MethodGet + " " + BOOKS
	POST_BOOK   = http.MethodPost + " " + BOOKS_POST
	PUT_BOOK    = http.MethodPut + " " + BOOKS
	DELETE_BOOK = http.MethodDelete + " " + BOOKS

	DOGS       = API + "/dogs" // keyed by ?name=
	DOGS_ALL   = DOGS + "/all"
	DOGS_POST  = DOGS + "/post"
	GET_DOGS   = http.MethodGet + " " + DOGS_ALL
	GET_DOG    = http.MethodGet + " " + DOGS
	POST_DOG   = http.MethodPost + " " + DOGS_POST
	PUT_DOG    = http.MethodPut + " " + DOGS
	DELETE_DOG = http.MethodDelete + " " + DOGS

	RESTAURANTS       = API + "/Restaurant" // keyed by ?id=
	RESTAURANTS_ALL   = RESTAURANTS + "/all"
	RESTAURANTS_POST  = RESTAURANTS + "/post"
	GET_RESTAURANTS   = http.MethodGet + " " + RESTAURANTS_ALL
	GET_RESTAURANT    = http.MethodGet + " " + RESTAURANTS
	POST_RESTAURANT   = http.MethodPost + " " + RESTAURANTS_POST
	PUT_RESTAURANT    = http.MethodPut + " " + RESTAURANTS
	DELETE_RESTAURANT = http.MethodDelete + " " + RESTAURANTS

	AUTH            = API + "/auth"
	AUTH_LOGIN      = AUTH + "/login"
	POST_AUTH_LOGIN = http.MethodPost + " " + AUTH_LOGIN

	CURRENT_USER     = API + "/currentUser"
	GET_CURRENT_USER = http.MethodGet + " " + CURRENT_USER

	METRICS     = ROOT + "metrics"
	GET_METRICS = http.MethodGet + " " + METRICS
	HEALTHZ     = ROOT + "healthz"
	GET_HEALTHZ = http.MethodGet + " " + HEALTHZ
)
