package mystore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type signer struct {
	UID   string
	Name  string
	Email string
}

var (
	exampleSigner = signer{UID: "123", Name: "Marc", Email: "marc@example.com"}
)

func TestStore(t *testing.T) {
	c := context.TODO()
	ps, cleanup, err := NewInMemoryStore[signer](c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := ps.Get(c, exampleSigner.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put", func(t *testing.T) {
		err = ps.Put(c, exampleSigner.UID, exampleSigner)
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		p, found, err := ps.Get(c, exampleSigner.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, signer{UID: "123", Name: "Marc", Email: "marc@example.com"}, p)
	})

	t.Run("List", func(t *testing.T) {
		all, err := ps.List(c)
		assert.NoError(t, err)
		assert.Equal(t, []signer{exampleSigner}, all)
	})

	t.Run("Transactional get and delete", func(t *testing.T) {
		err := ps.RunInTransaction(c, func(c context.Context) error {
			_, found, err := ps.Get(c, exampleSigner.UID)
			assert.True(t, found)
			if err != nil {
				return err
			}
			return ps.Delete(c, exampleSigner.UID)
		})
		assert.NoError(t, err)

		_, found, err := ps.Get(c, exampleSigner.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})
}
