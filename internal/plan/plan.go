// Package plan models the JSON document produced by `terraform show -json`
// and loads it from disk.
package plan

// Plan is the decoded plan document. Only the fields matome consumes are
// modeled; everything else in the document is ignored by decoding.
type Plan struct {
	FormatVersion    string           `json:"format_version,omitempty"`
	TerraformVersion string           `json:"terraform_version,omitempty"`
	ResourceChanges  []ResourceChange `json:"resource_changes,omitempty"`
}

// ResourceChange is one entry of the plan's resource_changes list.
type ResourceChange struct {
	// Address is the absolute resource address (e.g. "aws_instance.web").
	Address string `json:"address,omitempty"`

	// Change holds the planned change legs. Terraform emits it for every
	// record, but matome tolerates its absence.
	Change *Change `json:"change,omitempty"`
}

// Change carries the ordered action legs Terraform planned for a resource.
type Change struct {
	Actions []string `json:"actions,omitempty"`
}
