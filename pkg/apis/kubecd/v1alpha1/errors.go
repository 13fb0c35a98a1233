package v1alpha1

import "errors"

// ErrInvalidProviderKind is returned when an unknown provider kind is specified.
var ErrInvalidProviderKind = errors.New("invalid provider kind")

// ErrInvalidName is returned when a cluster or environment name is not a valid DNS label.
var ErrInvalidName = errors.New("name is invalid")

// ErrNameTooLong is returned when a name exceeds the maximum length.
var ErrNameTooLong = errors.New("name is too long")

// ErrDuplicateName is returned when two clusters or two environments share a name.
var ErrDuplicateName = errors.New("duplicate name")

// ErrUnknownCluster is returned when an environment references a cluster that is not defined.
var ErrUnknownCluster = errors.New("unknown cluster")

// ErrMissingField is returned when a required field is empty.
var ErrMissingField = errors.New("missing required field")

// ErrInvalidTypeMeta is returned when apiVersion or kind do not identify a kubecd Config.
var ErrInvalidTypeMeta = errors.New("invalid type metadata")

// ErrUnknownEnvironment is returned when a requested environment is not defined.
var ErrUnknownEnvironment = errors.New("unknown environment")
