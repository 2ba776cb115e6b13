// Package ios models the iOS build jobs emitted into the generated CI
// workflow configuration: platform versions, architecture variants, and
// the job definitions that combine them into declarative job records.
package ios

import (
	"strconv"
	"strings"

	"cigen/pkg/errors"
	"cigen/pkg/tree"
)

// IOSVersion represents a dotted platform version, e.g. 11.2.1.
type IOSVersion struct {
	// Parts holds the version components in order (major, minor, patch, ...)
	Parts []int
}

// RenderDots returns the version components joined by ".".
func (v IOSVersion) RenderDots() string {
	return strings.Join(v.stringParts(), ".")
}

func (v IOSVersion) stringParts() []string {
	parts := make([]string, len(v.Parts))
	for i, p := range v.Parts {
		parts[i] = strconv.Itoa(p)
	}
	return parts
}

// ArchVariant names a build target architecture, optionally marked as a
// custom (non-standard) build configuration.
type ArchVariant struct {
	Name     string
	IsCustom bool
}

// Render returns the variant token, with a "custom" qualifier appended
// for custom builds (e.g. "arm64_custom").
func (a ArchVariant) Render() string {
	parts := []string{a.Name}
	if a.IsCustom {
		parts = append(parts, "custom")
	}
	return strings.Join(parts, "_")
}

// IOSJob combines a version and an architecture variant into one CI build
// job definition.
type IOSJob struct {
	Version IOSVersion
	Variant ArchVariant
	// IsOrgMemberContext grants the job the elevated org-member CI
	// context (protected credentials). Catalog entries set it explicitly.
	IsOrgMemberContext bool
	// ExtraProps are applied on top of the generated properties in order,
	// overwriting same-named keys. Escape hatch for ad-hoc per-job fields.
	ExtraProps []tree.Entry
}

// GenNameParts derives the job identity tokens: the fixed "pytorch"/"ios"
// prefix, the version, and the rendered variant with a "build" suffix.
// The build environment label keeps the dotted version form; the CI job
// name cannot embed dots, so it expands the version into one token per
// component instead.
func (j IOSJob) GenNameParts(withVersionDots bool) []string {
	versionParts := j.Version.stringParts()
	if withVersionDots {
		versionParts = []string{j.Version.RenderDots()}
	}

	buildVariantSuffix := strings.Join([]string{j.Variant.Render(), "build"}, "_")

	parts := []string{"pytorch", "ios"}
	parts = append(parts, versionParts...)
	return append(parts, buildVariantSuffix)
}

// GenTree emits the declarative job record consumed by the workflow
// assembler: a single-key mapping from the job kind to its properties.
func (j IOSJob) GenTree() (*tree.Node, error) {
	if err := j.validate(); err != nil {
		return nil, err
	}

	// The simulator toolchain is keyed off the x86_64 identifier; every
	// other architecture targets a physical device OS.
	platformName := "OS"
	if j.Variant.Name == "x86_64" {
		platformName = "SIMULATOR"
	}

	props := tree.New()
	props.Set("build_environment", strings.Join(j.GenNameParts(true), "-"))
	props.Set("ios_arch", j.Variant.Name)
	props.Set("ios_platform", platformName)
	props.Set("name", strings.Join(j.GenNameParts(false), "_"))
	props.Set("requires", []string{"setup"})

	if j.IsOrgMemberContext {
		props.Set("context", "org-member")
	}

	// Last writer wins: extras overwrite anything built above.
	for _, extra := range j.ExtraProps {
		props.Set(extra.Key, extra.Value)
	}

	record := tree.New()
	record.Set("pytorch_ios_build", props)
	return record, nil
}

func (j IOSJob) validate() error {
	if len(j.Version.Parts) == 0 {
		return errors.NewJobDefinitionError(j.Variant.Render(), "version sequence is empty")
	}
	if j.Variant.Name == "" {
		return errors.NewJobDefinitionError(j.Version.RenderDots(), "architecture name is empty")
	}
	return nil
}
