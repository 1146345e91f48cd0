package virtualmachine

import "errors"

var (
	ErrHibernationNotImplemented = errors.New("hibernation is not implemented")
	ErrUnknownDesiredState       = errors.New("unknown desired state")
	ErrGetPod                    = errors.New("get pod")
	ErrGetService                = errors.New("get service")
	ErrCreatePod                 = errors.New("create pod")
	ErrCreateService             = errors.New("create service")
	ErrDeletePod                 = errors.New("delete pod")
	ErrDeleteService             = errors.New("delete service")
)
