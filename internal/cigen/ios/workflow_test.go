package ios

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"cigen/pkg/tree"
)

func TestGetWorkflowJobs_OnePerCatalogEntry(t *testing.T) {
	jobs, err := GetWorkflowJobs()
	require.NoError(t, err)
	require.Len(t, jobs, len(WorkflowData))
}

func TestGetWorkflowJobs_PreservesCatalogOrder(t *testing.T) {
	jobs, err := GetWorkflowJobs()
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	wantNames := []string{
		"pytorch_ios_11_2_1_x86_64_build",
		"pytorch_ios_11_2_1_arm64_build",
		"pytorch_ios_11_2_1_arm64_custom_build",
	}

	for i, record := range jobs {
		value, ok := record.Get("pytorch_ios_build")
		require.True(t, ok)

		props, ok := value.(*tree.Node)
		require.True(t, ok)

		name, ok := props.Get("name")
		require.True(t, ok)
		assert.Equal(t, wantNames[i], name, "record %d", i)
	}
}

func TestGetWorkflowJobs_YAMLOutput(t *testing.T) {
	jobs, err := GetWorkflowJobs()
	require.NoError(t, err)

	data, err := yaml.Marshal(jobs)
	require.NoError(t, err)

	yamlStr := string(data)
	assert.Contains(t, yamlStr, "pytorch_ios_build:")
	assert.Contains(t, yamlStr, "build_environment: pytorch-ios-11.2.1-x86_64_build")
	assert.Contains(t, yamlStr, "ios_platform: SIMULATOR")
	assert.Contains(t, yamlStr, "build_environment: pytorch-ios-11.2.1-arm64_build")
	assert.Contains(t, yamlStr, "ios_platform: OS")
	assert.Contains(t, yamlStr, "context: org-member")
	assert.Contains(t, yamlStr, "op_list: mobilenetv2.yaml")
	assert.Contains(t, yamlStr, "- setup")

	// The simulator job carries no context key
	assert.Equal(t, 2, strings.Count(yamlStr, "context: org-member"))

	// Property keys serialize in build order, not alphabetically
	assert.Less(t, strings.Index(yamlStr, "build_environment:"), strings.Index(yamlStr, "ios_arch:"))
	assert.Less(t, strings.Index(yamlStr, "ios_platform:"), strings.Index(yamlStr, "name:"))
}

func TestGetWorkflowJobs_Repeatable(t *testing.T) {
	first, err := GetWorkflowJobs()
	require.NoError(t, err)
	second, err := GetWorkflowJobs()
	require.NoError(t, err)

	firstYAML, err := yaml.Marshal(first)
	require.NoError(t, err)
	secondYAML, err := yaml.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, string(firstYAML), string(secondYAML))
}
