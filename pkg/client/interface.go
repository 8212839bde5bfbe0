// Copyright 2021 Laszlo Fogas
// Original structure Copyright 2018 Drone.IO Inc.
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

package client

import (
	"net/http"

	"github.com/csconnell/hipchat-plugin/pkg/model"
)

// Client is used to communicate with the notifier server.
type Client interface {
	// SetClient sets the http.Client.
	SetClient(*http.Client)

	// SetAddress sets the server address.
	SetAddress(string)

	// EventPost delivers a build lifecycle event, eventType is one of started, completed, deleted, finalized
	EventPost(eventType string, event *model.BuildEvent) error

	// JobConfigGet returns the notification preferences of a project
	JobConfigGet(project string) (*model.JobNotificationConfig, error)

	// JobConfigPost replaces the notification preferences of a project
	JobConfigPost(config *model.JobNotificationConfig) (*model.JobNotificationConfig, error)

	// JobConfigsGet returns the notification preferences of every configured project
	JobConfigsGet() ([]*model.JobNotificationConfig, error)

	// BuildsGet returns the latest recorded builds of a project
	BuildsGet(project string, limit int) ([]*model.BuildRecord, error)

	// UserGet returns the user with the given login
	UserGet(login string) (*model.User, error)

	// UserPost creates an API user and returns it with its token
	UserPost(login string) (*model.User, error)

	// UserDelete removes an API user
	UserDelete(login string) error

	// UsersGet lists the API users
	UsersGet() ([]*model.User, error)
}
