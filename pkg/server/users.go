package server

import (
	"database/sql"
	"encoding/base32"
	"encoding/json"
	"net/http"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/csconnell/hipchat-plugin/pkg/server/token"
	"github.com/csconnell/hipchat-plugin/pkg/store"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

func getUser(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")

	ctx := r.Context()
	store := ctx.Value("store").(*store.Store)

	user, err := store.User(login)
	if err == sql.ErrNoRows {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	} else if err != nil {
		logrus.Errorf("cannot get user %s: %s", login, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	userString, err := json.Marshal(user)
	if err != nil {
		logrus.Errorf("cannot serialize user %s: %s", login, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(userString)
}

// saveUser creates an API user and returns it with its token.
// The token is not stored, only the secret it is signed with.
func saveUser(w http.ResponseWriter, r *http.Request) {
	var usernameToSave string
	err := json.NewDecoder(r.Body).Decode(&usernameToSave)
	if err != nil || usernameToSave == "" {
		logrus.Errorf("cannot decode user name to save: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	store := ctx.Value("store").(*store.Store)

	user := &model.User{
		Login:  usernameToSave,
		Secret: base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)),
	}

	err = store.CreateUser(user)
	if err != nil {
		logrus.Errorf("cannot create user %s: %s", user.Login, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	token := token.New(token.UserToken, user.Login)
	tokenStr, err := token.Sign(user.Secret)
	if err != nil {
		logrus.Errorf("couldn't create user token %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	user.Token = tokenStr

	userString, err := json.Marshal(user)
	if err != nil {
		logrus.Errorf("cannot serialize user %s: %s", user.Login, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write(userString)
}

func deleteUser(w http.ResponseWriter, r *http.Request) {
	usernameToDelete := chi.URLParam(r, "login")

	ctx := r.Context()
	user := ctx.Value("user").(*model.User)
	if usernameToDelete == user.Login {
		logrus.Errorf("self-deletion is not allowed")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	store := ctx.Value("store").(*store.Store)

	err := store.DeleteUser(usernameToDelete)
	if err != nil {
		logrus.Errorf("cannot delete user %s: %s", usernameToDelete, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getUsers lists the API users, admins are left out
func getUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	store := ctx.Value("store").(*store.Store)

	users, err := store.Users()
	if err != nil {
		logrus.Errorf("cannot get users: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	onlyAPIKeys := []*model.User{}
	for _, u := range users {
		if !u.Admin {
			onlyAPIKeys = append(onlyAPIKeys, u)
		}
	}

	usersString, err := json.Marshal(onlyAPIKeys)
	if err != nil {
		logrus.Errorf("cannot serialize users: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(usersString)
}
