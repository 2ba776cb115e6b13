package ios

import (
	"fmt"

	"cigen/pkg/tree"
)

// WorkflowData is the full ordered set of iOS build jobs to emit. Order is
// significant: downstream tooling relies on it for deterministic diffing
// of the generated configuration.
var WorkflowData = []IOSJob{
	{
		Version: IOSVersion{Parts: []int{11, 2, 1}},
		Variant: ArchVariant{Name: "x86_64"},
	},
	{
		Version:            IOSVersion{Parts: []int{11, 2, 1}},
		Variant:            ArchVariant{Name: "arm64"},
		IsOrgMemberContext: true,
	},
	{
		Version:            IOSVersion{Parts: []int{11, 2, 1}},
		Variant:            ArchVariant{Name: "arm64", IsCustom: true},
		IsOrgMemberContext: true,
		ExtraProps: []tree.Entry{
			{Key: "op_list", Value: "mobilenetv2.yaml"},
		},
	},
}

// GetWorkflowJobs renders one record per catalog entry, preserving catalog
// order. No deduplication, reordering, or filtering.
func GetWorkflowJobs() ([]*tree.Node, error) {
	jobs := make([]*tree.Node, 0, len(WorkflowData))
	for i, job := range WorkflowData {
		record, err := job.GenTree()
		if err != nil {
			return nil, fmt.Errorf("workflow entry %d: %w", i, err)
		}
		jobs = append(jobs, record)
	}
	return jobs, nil
}
