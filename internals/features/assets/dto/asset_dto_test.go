package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssetRequestNormalize(t *testing.T) {
	tag := "  ast-1a2b3c4d "
	loc := "  Science Block "
	req := CreateAssetRequest{
		Tag:       &tag,
		Name:      "  Microscope set ",
		Category:  " Equipment",
		Condition: "New ",
		Location:  &loc,
	}
	req.Normalize()

	require.NotNil(t, req.Tag)
	assert.Equal(t, "AST-1A2B3C4D", *req.Tag)
	assert.Equal(t, "Microscope set", req.Name)
	assert.Equal(t, "equipment", req.Category)
	assert.Equal(t, "new", req.Condition)
	require.NotNil(t, req.Location)
	assert.Equal(t, "Science Block", *req.Location)
}

func TestCreateAssetRequestNormalizeBlankOptionals(t *testing.T) {
	tag := "   "
	loc := ""
	req := CreateAssetRequest{Tag: &tag, Location: &loc}
	req.Normalize()

	assert.Nil(t, req.Tag)
	assert.Nil(t, req.Location)
}
