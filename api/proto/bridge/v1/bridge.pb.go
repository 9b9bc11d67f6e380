package v1

import (
	context "context"
	reflect "reflect"
	sync "sync"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	proto "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/runtime/protoimpl"
	"google.golang.org/protobuf/types/descriptorpb"
)

const (
	// Verify that this generated file is compatible with the proto package it is being compiled against.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that this generated file is compatible with the protoimpl package it is being compiled against.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type PingRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *PingRequest) Reset() {
	*x = PingRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_bridge_v1_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingRequest) ProtoMessage() {}

func (x *PingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bridge_v1_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type PingResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Ok bool `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
}

func (x *PingResponse) Reset() {
	*x = PingResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_bridge_v1_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingResponse) ProtoMessage() {}

func (x *PingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bridge_v1_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *PingResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

type StatusRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *StatusRequest) Reset() {
	*x = StatusRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_bridge_v1_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *StatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusRequest) ProtoMessage() {}

func (x *StatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bridge_v1_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type StatusResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Pid        int32   `protobuf:"varint,1,opt,name=pid,proto3" json:"pid,omitempty"`
	UptimeSec  float64 `protobuf:"fixed64,2,opt,name=uptime_sec,json=uptimeSec,proto3" json:"uptime_sec,omitempty"`
	ConfigPath string  `protobuf:"bytes,3,opt,name=config_path,json=configPath,proto3" json:"config_path,omitempty"`
	Bridges    int32   `protobuf:"varint,4,opt,name=bridges,proto3" json:"bridges,omitempty"`
	MaxBridges int32   `protobuf:"varint,5,opt,name=max_bridges,json=maxBridges,proto3" json:"max_bridges,omitempty"`
}

func (x *StatusResponse) Reset() {
	*x = StatusResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_bridge_v1_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *StatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusResponse) ProtoMessage() {}

func (x *StatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bridge_v1_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *StatusResponse) GetPid() int32 {
	if x != nil {
		return x.Pid
	}
	return 0
}

func (x *StatusResponse) GetUptimeSec() float64 {
	if x != nil {
		return x.UptimeSec
	}
	return 0
}

func (x *StatusResponse) GetConfigPath() string {
	if x != nil {
		return x.ConfigPath
	}
	return ""
}

func (x *StatusResponse) GetBridges() int32 {
	if x != nil {
		return x.Bridges
	}
	return 0
}

func (x *StatusResponse) GetMaxBridges() int32 {
	if x != nil {
		return x.MaxBridges
	}
	return 0
}

type Bridge struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Pid         int32    `protobuf:"varint,1,opt,name=pid,proto3" json:"pid,omitempty"`
	Name        string   `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Cmdline     []string `protobuf:"bytes,3,rep,name=cmdline,proto3" json:"cmdline,omitempty"`
	Restarts    int32    `protobuf:"varint,4,opt,name=restarts,proto3" json:"restarts,omitempty"`
	StartedUnix int64    `protobuf:"varint,5,opt,name=started_unix,json=startedUnix,proto3" json:"started_unix,omitempty"`
	Stopping    bool     `protobuf:"varint,6,opt,name=stopping,proto3" json:"stopping,omitempty"`
}

func (x *Bridge) Reset() {
	*x = Bridge{}
	if protoimpl.UnsafeEnabled {
		mi := &file_bridge_v1_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Bridge) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Bridge) ProtoMessage() {}

func (x *Bridge) ProtoReflect() protoreflect.Message {
	mi := &file_bridge_v1_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *Bridge) GetPid() int32 {
	if x != nil {
		return x.Pid
	}
	return 0
}

func (x *Bridge) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Bridge) GetCmdline() []string {
	if x != nil {
		return x.Cmdline
	}
	return nil
}

func (x *Bridge) GetRestarts() int32 {
	if x != nil {
		return x.Restarts
	}
	return 0
}

func (x *Bridge) GetStartedUnix() int64 {
	if x != nil {
		return x.StartedUnix
	}
	return 0
}

func (x *Bridge) GetStopping() bool {
	if x != nil {
		return x.Stopping
	}
	return false
}

type ListBridgesRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *ListBridgesRequest) Reset() {
	*x = ListBridgesRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_bridge_v1_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListBridgesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBridgesRequest) ProtoMessage() {}

func (x *ListBridgesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bridge_v1_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type ListBridgesResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Bridges []*Bridge `protobuf:"bytes,1,rep,name=bridges,proto3" json:"bridges,omitempty"`
}

func (x *ListBridgesResponse) Reset() {
	*x = ListBridgesResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_bridge_v1_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListBridgesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBridgesResponse) ProtoMessage() {}

func (x *ListBridgesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bridge_v1_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *ListBridgesResponse) GetBridges() []*Bridge {
	if x != nil {
		return x.Bridges
	}
	return nil
}

var File_bridge_v1_proto protoreflect.FileDescriptor

var (
	file_bridge_v1_proto_once    sync.Once
	file_bridge_v1_proto_rawDesc []byte
)

func file_bridge_v1_proto_rawDescGZIP() []byte {
	file_bridge_v1_proto_once.Do(func() {
		file_bridge_v1_proto_rawDesc = protoimpl.X.CompressGZIP(file_bridge_v1_proto_rawDesc)
	})
	return file_bridge_v1_proto_rawDesc
}

var file_bridge_v1_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_bridge_v1_proto_goTypes = []interface{}{
	(*PingRequest)(nil),         // 0: bridge.v1.PingRequest
	(*PingResponse)(nil),        // 1: bridge.v1.PingResponse
	(*StatusRequest)(nil),       // 2: bridge.v1.StatusRequest
	(*StatusResponse)(nil),      // 3: bridge.v1.StatusResponse
	(*Bridge)(nil),              // 4: bridge.v1.Bridge
	(*ListBridgesRequest)(nil),  // 5: bridge.v1.ListBridgesRequest
	(*ListBridgesResponse)(nil), // 6: bridge.v1.ListBridgesResponse
}
var file_bridge_v1_proto_depIdxs = []int32{
	4, // 0: bridge.v1.ListBridgesResponse.bridges:type_name -> bridge.v1.Bridge
	0, // 1: bridge.v1.BridgeDaemon.Ping:input_type -> bridge.v1.PingRequest
	1, // 2: bridge.v1.BridgeDaemon.Ping:output_type -> bridge.v1.PingResponse
	2, // 3: bridge.v1.BridgeDaemon.Status:input_type -> bridge.v1.StatusRequest
	3, // 4: bridge.v1.BridgeDaemon.Status:output_type -> bridge.v1.StatusResponse
	5, // 5: bridge.v1.BridgeDaemon.ListBridges:input_type -> bridge.v1.ListBridgesRequest
	6, // 6: bridge.v1.BridgeDaemon.ListBridges:output_type -> bridge.v1.ListBridgesResponse
}

func init() {
	file_bridge_v1_proto_init()
}

func file_bridge_v1_proto_init() {
	if File_bridge_v1_proto != nil {
		return
	}

	if !protoimpl.UnsafeEnabled {
		file_bridge_v1_proto_msgTypes[0].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*PingRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_bridge_v1_proto_msgTypes[1].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*PingResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_bridge_v1_proto_msgTypes[2].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*StatusRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_bridge_v1_proto_msgTypes[3].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*StatusResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_bridge_v1_proto_msgTypes[4].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*Bridge); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_bridge_v1_proto_msgTypes[5].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*ListBridgesRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_bridge_v1_proto_msgTypes[6].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*ListBridgesResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}

	fd := &descriptorpb.FileDescriptorProto{
		Syntax:  proto.String("proto3"),
		Name:    proto.String("bridge/v1/bridge.proto"),
		Package: proto.String("bridge.v1"),
		MessageType: []*descriptorpb.DescriptorProto{
			{Name: proto.String("PingRequest")},
			{
				Name: proto.String("PingResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("ok"), Number: proto.Int32(1), Type: descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()},
				},
			},
			{Name: proto.String("StatusRequest")},
			{
				Name: proto.String("StatusResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("pid"), Number: proto.Int32(1), Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum()},
					{Name: proto.String("uptime_sec"), Number: proto.Int32(2), Type: descriptorpb.FieldDescriptorProto_TYPE_DOUBLE.Enum()},
					{Name: proto.String("config_path"), Number: proto.Int32(3), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()},
					{Name: proto.String("bridges"), Number: proto.Int32(4), Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum()},
					{Name: proto.String("max_bridges"), Number: proto.Int32(5), Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum()},
				},
			},
			{
				Name: proto.String("Bridge"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("pid"), Number: proto.Int32(1), Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum()},
					{Name: proto.String("name"), Number: proto.Int32(2), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()},
					{Name: proto.String("cmdline"), Number: proto.Int32(3), Label: descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()},
					{Name: proto.String("restarts"), Number: proto.Int32(4), Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum()},
					{Name: proto.String("started_unix"), Number: proto.Int32(5), Type: descriptorpb.FieldDescriptorProto_TYPE_INT64.Enum()},
					{Name: proto.String("stopping"), Number: proto.Int32(6), Type: descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum()},
				},
			},
			{Name: proto.String("ListBridgesRequest")},
			{
				Name: proto.String("ListBridgesResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{
						Name:     proto.String("bridges"),
						Number:   proto.Int32(1),
						Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
						Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
						TypeName: proto.String(".bridge.v1.Bridge"),
					},
				},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: proto.String("BridgeDaemon"),
				Method: []*descriptorpb.MethodDescriptorProto{
					{
						Name:       proto.String("Ping"),
						InputType:  proto.String(".bridge.v1.PingRequest"),
						OutputType: proto.String(".bridge.v1.PingResponse"),
					},
					{
						Name:       proto.String("Status"),
						InputType:  proto.String(".bridge.v1.StatusRequest"),
						OutputType: proto.String(".bridge.v1.StatusResponse"),
					},
					{
						Name:       proto.String("ListBridges"),
						InputType:  proto.String(".bridge.v1.ListBridgesRequest"),
						OutputType: proto.String(".bridge.v1.ListBridgesResponse"),
					},
				},
			},
		},
	}

	rawDesc, err := proto.Marshal(fd)
	if err != nil {
		panic(err)
	}
	file_bridge_v1_proto_rawDesc = rawDesc

	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: rawDesc,
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_bridge_v1_proto_goTypes,
		DependencyIndexes: file_bridge_v1_proto_depIdxs,
		MessageInfos:      file_bridge_v1_proto_msgTypes,
	}.Build()

	File_bridge_v1_proto = out.File
	file_bridge_v1_proto_rawDesc = nil
}

// gRPC client and server interfaces.

type BridgeDaemonClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Status(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	ListBridges(ctx context.Context, in *ListBridgesRequest, opts ...grpc.CallOption) (*ListBridgesResponse, error)
}

type bridgeDaemonClient struct {
	cc grpc.ClientConnInterface
}

func NewBridgeDaemonClient(cc grpc.ClientConnInterface) BridgeDaemonClient {
	return &bridgeDaemonClient{cc}
}

func (c *bridgeDaemonClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	err := c.cc.Invoke(ctx, "/bridge.v1.BridgeDaemon/Ping", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bridgeDaemonClient) Status(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	out := new(StatusResponse)
	err := c.cc.Invoke(ctx, "/bridge.v1.BridgeDaemon/Status", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bridgeDaemonClient) ListBridges(ctx context.Context, in *ListBridgesRequest, opts ...grpc.CallOption) (*ListBridgesResponse, error) {
	out := new(ListBridgesResponse)
	err := c.cc.Invoke(ctx, "/bridge.v1.BridgeDaemon/ListBridges", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type BridgeDaemonServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Status(context.Context, *StatusRequest) (*StatusResponse, error)
	ListBridges(context.Context, *ListBridgesRequest) (*ListBridgesResponse, error)
	mustEmbedUnimplementedBridgeDaemonServer()
}

type UnimplementedBridgeDaemonServer struct{}

func (UnimplementedBridgeDaemonServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedBridgeDaemonServer) Status(context.Context, *StatusRequest) (*StatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Status not implemented")
}
func (UnimplementedBridgeDaemonServer) ListBridges(context.Context, *ListBridgesRequest) (*ListBridgesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListBridges not implemented")
}
func (UnimplementedBridgeDaemonServer) mustEmbedUnimplementedBridgeDaemonServer() {}

func RegisterBridgeDaemonServer(s grpc.ServiceRegistrar, srv BridgeDaemonServer) {
	s.RegisterService(&BridgeDaemon_ServiceDesc, srv)
}

func _BridgeDaemon_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BridgeDaemonServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bridge.v1.BridgeDaemon/Ping",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BridgeDaemonServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BridgeDaemon_Status_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BridgeDaemonServer).Status(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bridge.v1.BridgeDaemon/Status",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BridgeDaemonServer).Status(ctx, req.(*StatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BridgeDaemon_ListBridges_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListBridgesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BridgeDaemonServer).ListBridges(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bridge.v1.BridgeDaemon/ListBridges",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BridgeDaemonServer).ListBridges(ctx, req.(*ListBridgesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var BridgeDaemon_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "bridge.v1.BridgeDaemon",
	HandlerType: (*BridgeDaemonServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Ping",
			Handler:    _BridgeDaemon_Ping_Handler,
		},
		{
			MethodName: "Status",
			Handler:    _BridgeDaemon_Status_Handler,
		},
		{
			MethodName: "ListBridges",
			Handler:    _BridgeDaemon_ListBridges_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bridge/v1/bridge.proto",
}
