package client

import "github.com/esphome/esphomeapi-go/internal/proto"

// ServiceArgType mirrors proto.ServiceArgType for callers who only import
// the client package.
type ServiceArgType = proto.ServiceArgType

// ServiceArgument describes one typed argument a user-defined service
// accepts.
type ServiceArgument = proto.ServiceArgument

// Service is a user-defined ESPHome service (exposed via api.service in
// the device's YAML) that UserServiceRequest can invoke.
type Service struct {
	Name string
	Key  uint32
	Args []ServiceArgument
}

func newService(info *proto.ServiceInfo) Service {
	return Service{Name: info.Name, Key: info.Key, Args: info.Args}
}
