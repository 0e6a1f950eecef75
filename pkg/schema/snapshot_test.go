package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderManifest(t *testing.T) {
	tables := []Table{
		{
			Name: "lab_results",
			Columns: []Column{
				{Name: "id", Type: "uuid"},
				{Name: "value_numeric", Type: "double precision"},
			},
			Aliases: []string{"result", "measurement"},
		},
		{
			Name:    "analytes",
			Columns: []Column{{Name: "code", Type: "text"}},
		},
	}

	manifest := string(renderManifest(tables))

	assert.True(t, strings.HasPrefix(manifest, "# Queryable tables\n"))
	assert.Contains(t, manifest, "## lab_results (also: result, measurement)\n")
	assert.Contains(t, manifest, "- value_numeric double precision\n")
	assert.Contains(t, manifest, "## analytes\n- code text\n")
	assert.NotContains(t, manifest, "(also: )")
}

func TestRenderManifestDeterministic(t *testing.T) {
	tables := []Table{{Name: "patients", Columns: []Column{{Name: "id", Type: "uuid"}}}}
	assert.Equal(t, renderManifest(tables), renderManifest(tables))
}

func TestRenderManifestEmpty(t *testing.T) {
	assert.Equal(t, "# Queryable tables\n", string(renderManifest(nil)))
}
