package domain_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestClassify(t *testing.T) {
	cause := zerr.With(zerr.Wrap(fs.ErrPermission, "failed to write output"), "path", "style.css")
	err := domain.Classify(domain.ErrIO, cause)

	assert.ErrorIs(t, err, domain.ErrIO)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, cause.Error(), err.Error())
	assert.Equal(t, domain.ErrIO, domain.Category(err))
	assert.Equal(t, cause, domain.Cause(err))
}

func TestClassify_KeepsExistingCategory(t *testing.T) {
	first := domain.Classify(domain.ErrConfig, errors.New("styleSRC is empty"))
	again := domain.Classify(domain.ErrCompile, zerr.Wrap(first, "styles"))

	assert.ErrorIs(t, again, domain.ErrConfig)
	assert.NotErrorIs(t, again, domain.ErrCompile)
}

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, domain.Classify(domain.ErrIO, nil))
	assert.Nil(t, domain.Category(errors.New("plain")))
}
