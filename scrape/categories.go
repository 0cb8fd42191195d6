package main

import (
	"golang.org/x/net/html"
)

// CategoryParser extracts the contents of one subsection of the binary
// form section into isa.
type CategoryParser func(section *html.Node, isa *ISA) error

// Category is one of the classification tables in the binary form
// section of the specification, identified by the anchor on its heading.
// Categories without a parser are skipped.
type Category struct {
	Name   string
	Anchor string
	Parse  CategoryParser
}

// categories lists the subsections of the binary form section in the
// order they appear in the document.
var categories = []Category{
	{Name: "magic-number", Anchor: "_magic_number"},
	{Name: "source-languages", Anchor: "_source_language"},
	{Name: "execution-models", Anchor: "_execution_model"},
	{Name: "addressing-models", Anchor: "_addressing_model"},
	{Name: "memory-models", Anchor: "_memory_model"},
	{Name: "execution-modes", Anchor: "_execution_mode"},
	{Name: "storage-classes", Anchor: "_storage_class"},
	{Name: "image-dimensionality", Anchor: "_dim"},
	{Name: "sampler-addressing-modes", Anchor: "_sampler_addressing_mode"},
	{Name: "sampler-filter-modes", Anchor: "_sampler_filter_mode"},
	{Name: "image-formats", Anchor: "_image_format"},
	{Name: "image-channel-orders", Anchor: "_image_channel_order"},
	{Name: "image-channel-data-types", Anchor: "_image_channel_data_type"},
	{Name: "image-operand-masks", Anchor: "_image_operands"},
	{Name: "fp-fast-math-modes", Anchor: "_fp_fast_math_mode"},
	{Name: "fp-rounding-modes", Anchor: "_fp_rounding_mode"},
	{Name: "linkage-types", Anchor: "_linkage_type"},
	{Name: "access-qualifiers", Anchor: "_access_qualifier"},
	{Name: "function-parameter-attributes", Anchor: "_function_parameter_attribute"},
	{Name: "decorations", Anchor: "_decoration"},
	{Name: "builtin-decorations", Anchor: "_builtin"},
	{Name: "selection-control-masks", Anchor: "_selection_control"},
	{Name: "loop-control-masks", Anchor: "_loop_control"},
	{Name: "function-control-masks", Anchor: "_function_control"},
	{Name: "memory-semantics", Anchor: "_memory_semantics_id"},
	{Name: "memory-operands", Anchor: "_memory_operands"},
	{Name: "scopes", Anchor: "_scope_id"},
	{Name: "group-operations", Anchor: "_group_operation"},
	{Name: "kernel-enqueue-flags", Anchor: "_kernel_enqueue_flags"},
	{Name: "kernel-profiling-info-masks", Anchor: "_kernel_profiling_info"},
	{Name: "capabilities", Anchor: "_capability"},
	{Name: "reserved-ray-flags", Anchor: "_reserved_ray_flags"},
	{Name: "reserved-ray-query-intersections", Anchor: "_reserved_ray_query_intersection"},
	{Name: "reserved-ray-query-committed-types", Anchor: "_reserved_ray_query_committed_type"},
	{Name: "reserved-ray-query-candidate-types", Anchor: "_reserved_ray_query_candidate_type"},
	{Name: "reserved-fragment-shading-rates", Anchor: "_reserved_fragment_shading_rate"},
	{Name: "reserved-fp-denorm-modes", Anchor: "_reserved_fp_denorm_mode"},
	{Name: "reserved-fp-operation-modes", Anchor: "_reserved_fp_operation_mode"},
	{Name: "quantization-modes", Anchor: "_quantization_modes"},
	{Name: "overflow-modes", Anchor: "_overflow_modes"},
	{Name: "packed-vector-format", Anchor: "_packed_vector_format"},
	{Name: "instructions", Anchor: "_instructions_3", Parse: parseInstructions},
}

func categoryByName(name string) (Category, bool) {
	for _, cat := range categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}
