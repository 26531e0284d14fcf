// annotations.go defines the annotation types, argument constants, and parser for the
// Motte WGSL shader pre-processor. Annotations are single-line WGSL comments prefixed
// with @motte: that drive automatic struct injection, bind group declaration, and
// resource provider registration. The parsed results are stored as Annotation values
// and consumed by the PreProcessor and Renderer to wire GPU resources without manual
// low-level plumbing.
package shader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// annotationPrefix is the marker that identifies a Motte annotation within a WGSL
// comment line. Every annotation must appear on a line beginning with "//" followed
// by this prefix.
const annotationPrefix = "@motte:"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment line.
// Each type corresponds to a distinct pre-processor action and produces different
// fields on the resulting Annotation struct.
type AnnotationType string

const (
	// annotationTypeInclude injects the WGSL source of a registered struct definition
	// into the shader at the annotation site. The struct source is embedded from the
	// corresponding Go GPU type's .wgsl asset file. This annotation does not produce
	// a declaration and is consumed entirely during pre-processing.
	//
	// Syntax: //@motte:include <struct_type>
	//
	// Example: //@motte:include cel_params
	annotationTypeInclude AnnotationType = "include"

	// AnnotationTypeBindingGroup generates a WGSL @group/@binding variable declaration
	// and appends an Annotation to the PreProcessor's declarations list. The declaration
	// carries the group index, binding index, and the resolved struct type, enabling the
	// Renderer to semantically match bindings to resource providers without string lookups.
	//
	// Syntax: //@motte:group <group> <binding> <address_space> <var_name> <type>
	//
	// Example: //@motte:group 0 0 storage_uniform params cel_params
	AnnotationTypeBindingGroup AnnotationType = "group"

	// AnnotationTypeProvider registers a resource provider identity for a group and binding
	// without generating any WGSL output. The WGSL binding declaration remains hand-written
	// in the shader source directly below the annotation. This is used for bindings that
	// contain raw WGSL types (textures, samplers) which have no corresponding registered
	// struct in the pre-processor's struct registry.
	//
	// The binding role after the provider identity declares the semantic purpose of an
	// individual binding within a multi-binding provider group, so pass setup can resolve
	// binding indices from declarations instead of variable-name string matching.
	//
	// Syntax: //@motte:provider <group> <binding> <provider_identity> <binding_role>
	//
	// Example: //@motte:provider 1 0 material lit_texture
	AnnotationTypeProvider AnnotationType = "provider"
)

// Annotation represents a single parsed @motte: annotation from a WGSL shader source
// line. It carries the annotation type, its arguments, the source line number, and
// optional group/binding indices. Annotations of type AnnotationTypeBindingGroup and
// AnnotationTypeProvider are appended to the PreProcessor's declarations list for
// consumption during resource wiring.
type Annotation struct {
	// Type identifies which annotation was parsed (include, group, or provider).
	Type AnnotationType

	// Args holds the annotation's arguments. The contents depend on Type:
	//   - include:  [0] = struct type key (e.g. "cel_params")
	//   - group:    [0] = address space, [1] = var name, [2] = WGSL type key
	//   - provider: [0] = provider identity (e.g. "material"), [1] = binding role (optional, e.g. "lit_texture")
	Args []AnnotationArg

	// Line is the 1-based line number in the original WGSL source where this annotation
	// was found. Used for error reporting.
	Line int

	// Group is the @group index for group and provider annotations. Nil for include annotations.
	Group *int

	// Binding is the @binding index for group and provider annotations. Nil for include annotations.
	Binding *int
}

// AnnotationArg is a typed string constant used as an argument in annotations.
// Arguments fall into three categories: struct type keys (used with include and group),
// address space identifiers (used with group), and provider identity keys (used with provider).
type AnnotationArg string

// ── Struct type arguments ──────────────────────────────────────────────────────
// These identify registered WGSL struct types. They can appear in @motte:include
// annotations (to inject the struct source) and in @motte:group annotations (as the
// type field, optionally wrapped in array<>). Each maps to a Go GPU type with an
// embedded .wgsl asset file.

const (
	// AnnotationArgCelParams identifies the CelParams struct.
	// Source: engine/renderer/material/assets/cel_params.wgsl
	AnnotationArgCelParams AnnotationArg = "cel_params"

	// AnnotationArgEdgeParams identifies the EdgeParams struct.
	// Source: engine/renderer/material/assets/edge_params.wgsl
	AnnotationArgEdgeParams AnnotationArg = "edge_params"

	// AnnotationArgScaleBias identifies the ScaleBias struct.
	// Source: engine/renderer/pixelate/assets/scale_bias.wgsl
	AnnotationArgScaleBias AnnotationArg = "scale_bias"
)

// ── Address space arguments ────────────────────────────────────────────────────
// These specify the WGSL variable address space in @motte:group annotations.
// They map to WGSL var<> declarations.

const (
	// annotationArgStorageTypeUniform maps to var<uniform> in WGSL.
	annotationArgStorageTypeUniform AnnotationArg = "storage_uniform"

	// annotationArgStorageTypeRead maps to var<storage, read> in WGSL.
	annotationArgStorageTypeRead AnnotationArg = "storage_read"

	// annotationArgStorageTypeReadWrite maps to var<storage, read_write> in WGSL.
	annotationArgStorageTypeReadWrite AnnotationArg = "storage_read_write"
)

// ── Provider identity arguments ────────────────────────────────────────────────
// These identify which resource provider owns a bind group. Used in @motte:provider
// annotations and matched by the Renderer's pass setup logic to wire the correct
// BindGroupProvider for each group.

const (
	// AnnotationArgMaterial identifies the material provider (lit/albedo color
	// attachments, color sampler, cel and edge uniforms).
	AnnotationArgMaterial AnnotationArg = "material"

	// AnnotationArgGeometry identifies the geometry provider (host-rendered depth
	// and normal prepass attachments consumed by the edge detector).
	AnnotationArgGeometry AnnotationArg = "geometry"

	// AnnotationArgPixelate identifies the upscale pass provider (composed
	// low-resolution color attachment, sampler, framing uniform).
	AnnotationArgPixelate AnnotationArg = "pixelate"
)

// ── Binding role arguments ─────────────────────────────────────────────────────
// These qualify individual bindings within a provider group. They appear as the
// fourth argument of an @motte:provider annotation, telling pass setup which
// texture or sampler role each binding fulfils without relying on variable-name
// string matching.

const (
	// AnnotationArgLitTexture identifies the host-rendered lit color attachment binding.
	AnnotationArgLitTexture AnnotationArg = "lit_texture"

	// AnnotationArgAlbedoTexture identifies the host-rendered albedo color attachment binding.
	AnnotationArgAlbedoTexture AnnotationArg = "albedo_texture"

	// AnnotationArgColorTexture identifies the composed low-resolution color attachment binding.
	AnnotationArgColorTexture AnnotationArg = "color_texture"

	// AnnotationArgColorSampler identifies the sampler paired with the color attachments.
	AnnotationArgColorSampler AnnotationArg = "color_sampler"

	// AnnotationArgDepthTexture identifies the depth prepass attachment binding.
	AnnotationArgDepthTexture AnnotationArg = "depth_texture"

	// AnnotationArgNormalTexture identifies the view-space normal prepass attachment binding.
	AnnotationArgNormalTexture AnnotationArg = "normal_texture"
)

// validStructTypes lists all AnnotationArg values that are accepted as struct type
// arguments in @motte:include and @motte:group annotations. Each entry must have a
// corresponding registryEntry in the PreProcessor's structRegistry.
var validStructTypes = []AnnotationArg{
	AnnotationArgCelParams,
	AnnotationArgEdgeParams,
	AnnotationArgScaleBias,
}

// validAddressSpaces lists all AnnotationArg values that are accepted as address
// space arguments in @motte:group annotations. Each maps to a WGSL var<> declaration.
var validAddressSpaces = []AnnotationArg{
	annotationArgStorageTypeUniform,
	annotationArgStorageTypeRead,
	annotationArgStorageTypeReadWrite,
}

// validProviderIdentities lists all AnnotationArg values that are accepted as
// provider identity arguments in @motte:provider annotations. Each maps to a
// resource provider used during pass setup wiring.
var validProviderIdentities = []AnnotationArg{
	AnnotationArgMaterial,
	AnnotationArgGeometry,
	AnnotationArgPixelate,
}

// validBindingRoles lists all AnnotationArg values that are accepted as binding
// role qualifiers in @motte:provider annotations. These identify the semantic
// purpose of individual bindings within a provider group.
var validBindingRoles = []AnnotationArg{
	AnnotationArgLitTexture,
	AnnotationArgAlbedoTexture,
	AnnotationArgColorTexture,
	AnnotationArgColorSampler,
	AnnotationArgDepthTexture,
	AnnotationArgNormalTexture,
}

// parseAnnotation attempts to parse a single line of WGSL source as a @motte: annotation.
// Returns nil with no error for lines that do not contain the annotation prefix. Returns
// a populated Annotation for valid annotations, or an error describing the problem for
// malformed annotations with correct prefix but invalid syntax or unknown arguments.
//
// Parameters:
//   - line: the raw WGSL source line to parse
//   - lineNum: the 1-based line number for error reporting
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line is not an annotation
//   - error: a descriptive error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @motte annotation", lineNum)
	}

	switch args[0] {
	case string(annotationTypeInclude):
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @motte include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validStructTypes, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown struct type %q in @motte include annotation", lineNum, args[1])
		}
		return &Annotation{
			Type: annotationTypeInclude,
			Args: []AnnotationArg{AnnotationArg(args[1])},
			Line: lineNum,
		}, nil
	case string(AnnotationTypeBindingGroup):
		if len(args) != 6 {
			return nil, fmt.Errorf("line %d: @motte group annotation requires exactly five arguments (group number, binding number, address space, var name, struct type)", lineNum)
		}
		groupInt, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid group number %q in @motte group annotation: %v", lineNum, args[1], err)
		}
		bindingInt, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid binding number %q in @motte group annotation: %v", lineNum, args[2], err)
		}
		if !slices.Contains(validAddressSpaces, AnnotationArg(args[3])) {
			return nil, fmt.Errorf("line %d: unknown address space %q in @motte group annotation", lineNum, args[3])
		}
		typeArg := args[5]
		if inner, ok := strings.CutPrefix(typeArg, "array<"); ok {
			inner = strings.TrimSuffix(inner, ">")
			if !slices.Contains(validStructTypes, AnnotationArg(inner)) {
				return nil, fmt.Errorf("line %d: unknown array element type %q in @motte group annotation", lineNum, inner)
			}
		} else {
			if !slices.Contains(validStructTypes, AnnotationArg(typeArg)) {
				return nil, fmt.Errorf("line %d: unknown struct type %q in @motte group annotation", lineNum, typeArg)
			}
		}
		return &Annotation{
			Type:    AnnotationTypeBindingGroup,
			Args:    []AnnotationArg{AnnotationArg(args[3]), AnnotationArg(args[4]), AnnotationArg(args[5])},
			Line:    lineNum,
			Group:   &groupInt,
			Binding: &bindingInt,
		}, nil
	case string(AnnotationTypeProvider):
		if len(args) < 4 || len(args) > 5 {
			return nil, fmt.Errorf("line %d: @motte provider annotation requires three or four arguments (group, binding, provider identity[, binding role])", lineNum)
		}
		groupInt, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid group number %q: %v", lineNum, args[1], err)
		}
		bindingInt, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid binding number %q in @motte provider annotation: %v", lineNum, args[2], err)
		}
		if !slices.Contains(validProviderIdentities, AnnotationArg(args[3])) {
			return nil, fmt.Errorf("line %d: unknown provider identity %q in @motte provider annotation", lineNum, args[3])
		}
		providerArgs := []AnnotationArg{AnnotationArg(args[3])}
		if len(args) == 5 {
			if !slices.Contains(validBindingRoles, AnnotationArg(args[4])) {
				return nil, fmt.Errorf("line %d: unknown binding role %q in @motte provider annotation", lineNum, args[4])
			}
			providerArgs = append(providerArgs, AnnotationArg(args[4]))
		}
		return &Annotation{
			Type:    AnnotationTypeProvider,
			Args:    providerArgs,
			Line:    lineNum,
			Group:   &groupInt,
			Binding: &bindingInt,
		}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown @motte annotation type %q", lineNum, args[0])
	}
}
