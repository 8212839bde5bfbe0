package server

import (
	"encoding/json"
	"net/http"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/csconnell/hipchat-plugin/pkg/store"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// getJobConfig returns the notification preferences of a project.
// Projects without saved preferences get the all-off defaults.
func getJobConfig(w http.ResponseWriter, r *http.Request) {
	project := chi.URLParam(r, "project")

	ctx := r.Context()
	store := ctx.Value("store").(*store.Store)

	config, err := store.JobConfig(project)
	if err != nil {
		logrus.Errorf("cannot get config of %s: %s", project, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if config == nil {
		config = &model.JobNotificationConfig{Project: project}
	}

	configString, err := json.Marshal(config)
	if err != nil {
		logrus.Errorf("cannot serialize config: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(configString)
}

func saveJobConfig(w http.ResponseWriter, r *http.Request) {
	project := chi.URLParam(r, "project")

	var config model.JobNotificationConfig
	err := json.NewDecoder(r.Body).Decode(&config)
	if err != nil {
		logrus.Errorf("cannot decode config: %s", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	config.Project = project

	ctx := r.Context()
	store := ctx.Value("store").(*store.Store)

	err = store.SaveJobConfig(&config)
	if err != nil {
		logrus.Errorf("cannot save config of %s: %s", project, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	configString, err := json.Marshal(config)
	if err != nil {
		logrus.Errorf("cannot serialize config: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(configString)
}

func getJobConfigs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	store := ctx.Value("store").(*store.Store)

	configs, err := store.JobConfigs()
	if err != nil {
		logrus.Errorf("cannot get configs: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if configs == nil {
		configs = []*model.JobNotificationConfig{}
	}

	configsString, err := json.Marshal(configs)
	if err != nil {
		logrus.Errorf("cannot serialize configs: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(configsString)
}
