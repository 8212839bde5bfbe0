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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/csconnell/hipchat-plugin/pkg/model"
)

const (
	pathEvent     = "%s/api/builds/%s"
	pathJobConfig = "%s/api/projects/%s/config"
	pathConfigs   = "%s/api/configs"
	pathBuilds    = "%s/api/projects/%s/builds"
	pathUser      = "%s/api/user"
	pathUsers     = "%s/api/users"
)

type client struct {
	client *http.Client
	addr   string
}

// New returns a client at the specified url.
func New(uri string) Client {
	return &client{http.DefaultClient, strings.TrimSuffix(uri, "/")}
}

// NewClient returns a client at the specified url.
func NewClient(uri string, cli *http.Client) Client {
	return &client{cli, strings.TrimSuffix(uri, "/")}
}

// SetClient sets the http.Client.
func (c *client) SetClient(client *http.Client) {
	c.client = client
}

// SetAddress sets the server address.
func (c *client) SetAddress(addr string) {
	c.addr = addr
}

func (c *client) EventPost(eventType string, event *model.BuildEvent) error {
	uri := fmt.Sprintf(pathEvent, c.addr, url.PathEscape(eventType))
	return c.post(uri, event, nil)
}

func (c *client) JobConfigGet(project string) (*model.JobNotificationConfig, error) {
	out := new(model.JobNotificationConfig)
	uri := fmt.Sprintf(pathJobConfig, c.addr, url.PathEscape(project))
	err := c.get(uri, out)
	return out, err
}

func (c *client) JobConfigPost(config *model.JobNotificationConfig) (*model.JobNotificationConfig, error) {
	out := new(model.JobNotificationConfig)
	uri := fmt.Sprintf(pathJobConfig, c.addr, url.PathEscape(config.Project))
	err := c.post(uri, config, out)
	return out, err
}

func (c *client) JobConfigsGet() ([]*model.JobNotificationConfig, error) {
	var out []*model.JobNotificationConfig
	uri := fmt.Sprintf(pathConfigs, c.addr)
	err := c.get(uri, &out)
	return out, err
}

func (c *client) BuildsGet(project string, limit int) ([]*model.BuildRecord, error) {
	var out []*model.BuildRecord
	uri := fmt.Sprintf(pathBuilds, c.addr, url.PathEscape(project))
	if limit != 0 {
		uri = uri + "?limit=" + strconv.Itoa(limit)
	}
	err := c.get(uri, &out)
	return out, err
}

func (c *client) UserGet(login string) (*model.User, error) {
	out := new(model.User)
	uri := fmt.Sprintf(pathUser, c.addr) + "/" + url.PathEscape(login)
	err := c.get(uri, out)
	return out, err
}

func (c *client) UserPost(login string) (*model.User, error) {
	out := new(model.User)
	uri := fmt.Sprintf(pathUser, c.addr)
	err := c.post(uri, login, out)
	return out, err
}

func (c *client) UserDelete(login string) error {
	uri := fmt.Sprintf(pathUser, c.addr) + "/" + url.PathEscape(login)
	return c.delete(uri)
}

func (c *client) UsersGet() ([]*model.User, error) {
	var out []*model.User
	uri := fmt.Sprintf(pathUsers, c.addr)
	err := c.get(uri, &out)
	return out, err
}

//
// http request helper functions
//

func (c *client) get(rawURL string, out interface{}) error {
	return c.do(rawURL, "GET", nil, out)
}

func (c *client) post(rawURL string, in, out interface{}) error {
	return c.do(rawURL, "POST", in, out)
}

func (c *client) delete(rawURL string) error {
	return c.do(rawURL, "DELETE", nil, nil)
}

func (c *client) do(rawURL, method string, in, out interface{}) error {
	body, err := c.open(rawURL, method, in)
	if err != nil {
		return err
	}
	defer body.Close()

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	if out == nil || len(bodyBytes) == 0 {
		return nil
	}

	return json.Unmarshal(bodyBytes, out)
}

func (c *client) open(rawURL, method string, in interface{}) (io.ReadCloser, error) {
	uri, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(method, uri.String(), nil)
	if err != nil {
		return nil, err
	}
	if in != nil {
		decoded, decodeErr := json.Marshal(in)
		if decodeErr != nil {
			return nil, decodeErr
		}
		buf := bytes.NewBuffer(decoded)
		req.Body = io.NopCloser(buf)
		req.ContentLength = int64(len(decoded))
		req.Header.Set("Content-Length", strconv.Itoa(len(decoded)))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode > http.StatusPartialContent {
		defer resp.Body.Close()
		out, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("client error %d: %s", resp.StatusCode, string(out))
	}
	return resp.Body, nil
}
