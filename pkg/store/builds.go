package store

import (
	database_sql "database/sql"
	"time"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/csconnell/hipchat-plugin/pkg/store/sql"
	"github.com/google/uuid"
	"github.com/russross/meddler"
)

// SaveBuild records the result of a completed build.
// A build reported twice keeps its id and gets the latest result.
func (db *Store) SaveBuild(project string, number int, result model.Result) (*model.BuildRecord, error) {
	stmt := sql.Stmt(db.driver, sql.SelectBuild)
	stored := new(model.BuildRecord)
	err := meddler.QueryRow(db, stored, stmt, project, number)
	if err != nil {
		if err != database_sql.ErrNoRows {
			return nil, err
		}

		record := &model.BuildRecord{
			ID:      uuid.New().String(),
			Project: project,
			Number:  number,
			Result:  string(result),
			Created: time.Now().Unix(),
		}
		return record, meddler.Insert(db, "builds", record)
	}

	stored.Result = string(result)
	_, err = db.Exec(sql.Stmt(db.driver, sql.UpdateBuildResult), stored.Result, stored.ID)
	return stored, err
}

// PreviousResult returns the result of the build preceding the given build number.
// The second return value is false if there is no such build.
func (db *Store) PreviousResult(project string, number int) (model.Result, bool, error) {
	stmt := sql.Stmt(db.driver, sql.SelectPreviousBuild)
	data := new(model.BuildRecord)
	err := meddler.QueryRow(db, data, stmt, project, number)
	if err == database_sql.ErrNoRows {
		return "", false, nil
	} else if err != nil {
		return "", false, err
	}
	return model.Result(data.Result), true, nil
}

// Builds returns the latest builds of a project, newest first
func (db *Store) Builds(project string, limit int) ([]*model.BuildRecord, error) {
	if limit == 0 {
		limit = 10
	}

	stmt := sql.Stmt(db.driver, sql.SelectBuildsByProject)
	var data []*model.BuildRecord
	err := meddler.QueryAll(db, &data, stmt, project, limit)
	return data, err
}
