package app

import "errors"

var (
	ErrCRDNotQueryable = errors.New("CRD is not queryable")
	ErrNoControllers   = errors.New("no controllers enabled")
)

// CRDInstallHint tells the operator how to install the CRDs.
const CRDInstallHint = "vmkube-controller crd | kubectl apply -f -"
