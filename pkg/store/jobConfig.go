package store

import (
	database_sql "database/sql"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/csconnell/hipchat-plugin/pkg/store/sql"
	"github.com/russross/meddler"
)

// SaveJobConfig creates or replaces the notification preferences of a project
func (db *Store) SaveJobConfig(config *model.JobNotificationConfig) error {
	stored, err := db.jobConfig(config.Project)
	if err != nil {
		switch err {
		case database_sql.ErrNoRows:
			config.ID = 0
			return meddler.Insert(db, "job_configs", config)
		default:
			return err
		}
	}

	config.ID = stored.ID
	return meddler.Update(db, "job_configs", config)
}

// JobConfig returns the notification preferences of a project,
// nil if the project has none
func (db *Store) JobConfig(project string) (*model.JobNotificationConfig, error) {
	config, err := db.jobConfig(project)
	if err == database_sql.ErrNoRows {
		return nil, nil
	}
	return config, err
}

// JobConfigs returns the notification preferences of all projects
func (db *Store) JobConfigs() ([]*model.JobNotificationConfig, error) {
	stmt := sql.Stmt(db.driver, sql.SelectJobConfigs)
	var data []*model.JobNotificationConfig
	err := meddler.QueryAll(db, &data, stmt)
	return data, err
}

func (db *Store) jobConfig(project string) (*model.JobNotificationConfig, error) {
	stmt := sql.Stmt(db.driver, sql.SelectJobConfigByProject)
	data := new(model.JobNotificationConfig)
	err := meddler.QueryRow(db, data, stmt, project)
	return data, err
}
