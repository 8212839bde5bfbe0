package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/csconnell/hipchat-plugin/pkg/notifications"
	"github.com/csconnell/hipchat-plugin/pkg/store"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// buildEvent takes the lifecycle events of the build orchestrator.
// Delivery problems are logged, the orchestrator always gets 202 for a well formed event.
func buildEvent(w http.ResponseWriter, r *http.Request) {
	t0 := time.Now()

	eventType := chi.URLParam(r, "event")
	switch eventType {
	case model.StartedEvent, model.CompletedEvent, model.DeletedEvent, model.FinalizedEvent:
	default:
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	var event model.BuildEvent
	err := json.NewDecoder(r.Body).Decode(&event)
	if err != nil {
		logrus.Errorf("cannot decode build event: %s", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if event.Project.Name == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest)+" project name is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	store := ctx.Value("store").(*store.Store)
	notifier := ctx.Value("notifier").(*notifications.ActiveNotifier)

	build := &event.Build
	switch eventType {
	case model.StartedEvent:
		err = notifier.Started(ctx, event.Project, build)
	case model.CompletedEvent:
		previous := previousResult(store, &event)
		if build.Result != model.InProgress {
			_, saveErr := store.SaveBuild(event.Project.Name, build.Number, build.Result)
			if saveErr != nil {
				logrus.Errorf("cannot save build %s #%d: %s", event.Project.Name, build.Number, saveErr)
			}
		}
		err = notifier.Completed(ctx, event.Project, build, previous)
	case model.DeletedEvent:
		err = notifier.Deleted(ctx, event.Project, build)
	case model.FinalizedEvent:
		err = notifier.Finalized(ctx, event.Project, build)
	}
	if err != nil {
		logrus.Errorf("cannot notify about %s build %s #%d: %s", eventType, event.Project.Name, build.Number, err)
	}

	if eventsProcessed, ok := ctx.Value("eventsProcessed").(*prometheus.CounterVec); ok && eventsProcessed != nil {
		eventsProcessed.WithLabelValues(eventType).Inc()
	}
	if perf, ok := ctx.Value("perf").(*prometheus.HistogramVec); ok && perf != nil {
		perf.WithLabelValues("buildEvent").Observe(time.Since(t0).Seconds())
	}

	w.WriteHeader(http.StatusAccepted)
}

// previousResult prefers the orchestrator's view of the previous build,
// then the build history, and treats the first build of a project as following a success
func previousResult(store *store.Store, event *model.BuildEvent) model.Result {
	if event.PreviousResult != nil {
		return *event.PreviousResult
	}

	previous, found, err := store.PreviousResult(event.Project.Name, event.Build.Number)
	if err != nil {
		logrus.Warnf("cannot look up previous build of %s: %s", event.Project.Name, err)
		return model.Success
	}
	if !found {
		return model.Success
	}
	return previous
}

func getBuilds(w http.ResponseWriter, r *http.Request) {
	project := chi.URLParam(r, "project")

	limit := 0
	limitParam := r.URL.Query().Get("limit")
	if limitParam != "" {
		var err error
		limit, err = strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
	}

	ctx := r.Context()
	store := ctx.Value("store").(*store.Store)

	builds, err := store.Builds(project, limit)
	if err != nil {
		logrus.Errorf("cannot get builds of %s: %s", project, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if builds == nil {
		builds = []*model.BuildRecord{}
	}

	buildsString, err := json.Marshal(builds)
	if err != nil {
		logrus.Errorf("cannot serialize builds: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(buildsString)
}
