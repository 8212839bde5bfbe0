package store

import (
	"testing"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/stretchr/testify/assert"
)

const encryptionKey = "the-key-has-to-be-32-bytes-long!"

func TestStoreInit(t *testing.T) {
	s := NewTest()
	defer func() {
		s.Close()
	}()
}

func TestEncryption(t *testing.T) {
	s := New("sqlite", ":memory:", encryptionKey)
	defer func() {
		s.Close()
	}()

	err := s.CreateUser(&model.User{
		Login:  "ci",
		Secret: "superSecretValue",
	})
	assert.Nil(t, err)

	rawData := s.QueryRow("select secret from users where login = 'ci'")
	var encryptedSecret string
	err = rawData.Scan(&encryptedSecret)
	assert.Nil(t, err)
	assert.NotEqual(t, "superSecretValue", encryptedSecret)

	fromDB, err := s.User("ci")
	assert.Nil(t, err)
	assert.Equal(t, "superSecretValue", fromDB.Secret)
}

func TestWithoutEncryption(t *testing.T) {
	s := NewTest()
	defer func() {
		s.Close()
	}()

	err := s.CreateUser(&model.User{
		Login:  "ci",
		Secret: "plainValue",
	})
	assert.Nil(t, err)

	rawData := s.QueryRow("select secret from users where login = 'ci'")
	var secret string
	err = rawData.Scan(&secret)
	assert.Nil(t, err)
	assert.Equal(t, "plainValue", secret, "secrets are stored as is without an encryption key")
}
