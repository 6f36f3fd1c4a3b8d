package codepoint

// Package-level database installed by Builder.Finish (see seed.go). These
// are written once at init time and never mutated afterwards — concurrent
// lookups require no synchronization (spec §5).
var (
	asciiMapping [128]uint32
	bmpMapping   [16]mappingSubPlane
	nonBMPMapping []mappingSubPlane

	asciiValidation [128]uint8
	bmpValidation   [16]validationSubPlane
	nonBMPValidation []validationSubPlane
)
