package model

// BuildRecord is the stored outcome of a completed build.
// It is used to find the previous result of a project.
type BuildRecord struct {
	ID      string `json:"id" meddler:"id"`
	Project string `json:"project" meddler:"project"`
	Number  int    `json:"number" meddler:"number"`
	Result  string `json:"result" meddler:"result"`
	Created int64  `json:"created" meddler:"created"`
}
