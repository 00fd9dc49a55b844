package plan

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/terassyi/matome/internal/errors"
)

// Extension is the only accepted plan file extension.
const Extension = ".json"

// minTerraformVersion is the first Terraform release whose plan JSON
// carries the resource_changes list.
var minTerraformVersion = semver.MustParse("0.12.0")

// Load reads and decodes a Terraform plan JSON file.
// The path must end in .json (case-insensitive) and the content must
// decode as a plan document; anything else is a terminating error.
func Load(path string) (*Plan, error) {
	if !strings.EqualFold(filepath.Ext(path), Extension) {
		return nil, errors.NewExtensionError(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewReadError(path, err)
	}

	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.NewParseError(path, err)
	}

	p.warnVersions()

	return &p, nil
}

// warnVersions logs advisories for plan versions matome was not written
// against. Version mismatches never fail the run; the consumed fields
// have been stable across plan format revisions.
func (p *Plan) warnVersions() {
	if p.FormatVersion != "" {
		v, err := semver.NewVersion(p.FormatVersion)
		switch {
		case err != nil:
			slog.Warn("unrecognized plan format version", "format_version", p.FormatVersion)
		case v.Major() > 1:
			slog.Warn("plan format is newer than this matome understands", "format_version", p.FormatVersion)
		}
	}

	if p.TerraformVersion != "" {
		v, err := semver.NewVersion(strings.TrimPrefix(p.TerraformVersion, "v"))
		switch {
		case err != nil:
			slog.Warn("unrecognized terraform version", "terraform_version", p.TerraformVersion)
		case v.LessThan(minTerraformVersion):
			slog.Warn("plan predates resource change reporting",
				"terraform_version", p.TerraformVersion,
				"minimum", minTerraformVersion.String())
		}
	}
}
