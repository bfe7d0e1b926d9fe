package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/cmdmatch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testHandler struct {
	message string
}

func TestNew(t *testing.T) {
	reg := New[testHandler]("handler")

	require.NotNil(t, reg)
	assert.Equal(t, 0, reg.Count())
	assert.Equal(t, "handler", reg.Kind())
	assert.Equal(t, "item", New[int]("").Kind())
}

func TestRegister(t *testing.T) {
	reg := New[testHandler]("handler")

	t.Run("register valid item", func(t *testing.T) {
		err := reg.Register("load", testHandler{message: "Loading file"})
		require.NoError(t, err)
		assert.Equal(t, 1, reg.Count())
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", testHandler{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "handler name cannot be empty")
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("load", testHandler{message: "again"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

		got, err := reg.Get("load")
		require.NoError(t, err)
		assert.Equal(t, "Loading file", got.message, "duplicate must not replace the original")
	})
}

func TestGet(t *testing.T) {
	reg := New[testHandler]("guard")
	require.NoError(t, reg.Register("has-any", testHandler{message: "x"}))

	t.Run("get existing item", func(t *testing.T) {
		got, err := reg.Get("has-any")
		require.NoError(t, err)
		assert.Equal(t, "x", got.message)
	})

	t.Run("get missing item", func(t *testing.T) {
		got, err := reg.Get("has-none")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		assert.Contains(t, err.Error(), "guard 'has-none' is not registered")
		assert.Equal(t, testHandler{}, got)
	})
}

func TestListAndHas(t *testing.T) {
	reg := New[int]("handler")
	for i, name := range []string{"save", "load", "quit"} {
		require.NoError(t, reg.Register(name, i))
	}

	assert.Equal(t, []string{"load", "quit", "save"}, reg.List())
	assert.True(t, reg.Has("quit"))
	assert.False(t, reg.Has("reset"))
}

func TestConcurrency(t *testing.T) {
	reg := New[int]("handler")
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("h%d", i), i)
			_ = reg.Has(fmt.Sprintf("h%d", i/2))
			_ = reg.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, reg.Count())
}

func TestMustRegister(t *testing.T) {
	reg := New[int]("handler")
	assert.NotPanics(t, func() { MustRegister(reg, "load", 1) })
	assert.Panics(t, func() { MustRegister(reg, "load", 2) })
}
