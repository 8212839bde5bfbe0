// Original work Copyright 2018 Drone.IO Inc.
// Modified work Copyright 2019 Laszlo Fogas
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package session

import (
	"context"
	"net/http"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/csconnell/hipchat-plugin/pkg/server/token"
	"github.com/csconnell/hipchat-plugin/pkg/store"
	"github.com/sirupsen/logrus"
)

// SetUser puts the user of the request's API token into the request context
func SetUser() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			var user *model.User

			ctx := r.Context()
			store := ctx.Value("store").(*store.Store)

			_, err := token.ParseRequest(r, func(t *token.Token) (string, error) {
				var err error
				user, err = store.User(t.Subject)
				if err != nil {
					return "", err
				}
				return user.Secret, err
			})
			if err == nil {
				r = r.WithContext(context.WithValue(r.Context(), "user", user))
			} else {
				logrus.Debugf("could not set user: %s", err)
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// MustUser makes sure there is an authenticated user set
func MustUser() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			_, userSet := ctx.Value("user").(*model.User)
			if !userSet {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			} else {
				next.ServeHTTP(w, r)
			}
		}
		return http.HandlerFunc(fn)
	}
}

// MustAdmin makes sure there is an authenticated user set and they are admin
func MustAdmin() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			user, userSet := ctx.Value("user").(*model.User)
			if !userSet {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			} else if user.Admin {
				next.ServeHTTP(w, r)
			} else {
				http.Error(w, http.StatusText(http.StatusForbidden)+" admin user is required", http.StatusForbidden)
			}
		}
		return http.HandlerFunc(fn)
	}
}
