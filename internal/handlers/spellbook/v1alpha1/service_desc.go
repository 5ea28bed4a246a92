package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "spellbook.v1alpha1.SpellService"

// Full method names, as seen by interceptors and clients
const (
	GetSpellFullMethodName      = "/" + ServiceName + "/GetSpell"
	ListSpellsFullMethodName    = "/" + ServiceName + "/ListSpells"
	QuerySpellsFullMethodName   = "/" + ServiceName + "/QuerySpells"
	ReloadCatalogFullMethodName = "/" + ServiceName + "/ReloadCatalog"
	CatalogStatsFullMethodName  = "/" + ServiceName + "/CatalogStats"
)

// SpellServiceServer is the server API for the spell service. Every message
// is a google.protobuf.Struct carrying the JSON shapes in types.go.
type SpellServiceServer interface {
	GetSpell(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListSpells(context.Context, *structpb.Struct) (*structpb.Struct, error)
	QuerySpells(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ReloadCatalog(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CatalogStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(SpellServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SpellServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SpellServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// SpellServiceDesc describes the spell service for grpc.Server registration
var SpellServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SpellServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSpell",
			Handler:    unaryHandler(GetSpellFullMethodName, SpellServiceServer.GetSpell),
		},
		{
			MethodName: "ListSpells",
			Handler:    unaryHandler(ListSpellsFullMethodName, SpellServiceServer.ListSpells),
		},
		{
			MethodName: "QuerySpells",
			Handler:    unaryHandler(QuerySpellsFullMethodName, SpellServiceServer.QuerySpells),
		},
		{
			MethodName: "ReloadCatalog",
			Handler:    unaryHandler(ReloadCatalogFullMethodName, SpellServiceServer.ReloadCatalog),
		},
		{
			MethodName: "CatalogStats",
			Handler:    unaryHandler(CatalogStatsFullMethodName, SpellServiceServer.CatalogStats),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "spellbook/v1alpha1/spell_service.proto",
}

// RegisterSpellServiceServer registers srv with the given registrar
func RegisterSpellServiceServer(s grpc.ServiceRegistrar, srv SpellServiceServer) {
	s.RegisterService(&SpellServiceDesc, srv)
}
