package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/spellbook-api/internal/errors"
)

// Client is a typed client for the spell service
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client over an established connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// GetSpell looks up a spell by name
func (c *Client) GetSpell(ctx context.Context, req *GetSpellRequest) (*GetSpellResponse, error) {
	out := &GetSpellResponse{}
	if err := c.invoke(ctx, GetSpellFullMethodName, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSpells lists the whole catalog
func (c *Client) ListSpells(ctx context.Context, req *ListSpellsRequest) (*SpellsResponse, error) {
	out := &SpellsResponse{}
	if err := c.invoke(ctx, ListSpellsFullMethodName, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// QuerySpells runs a faceted search
func (c *Client) QuerySpells(ctx context.Context, req *QuerySpellsRequest) (*SpellsResponse, error) {
	out := &SpellsResponse{}
	if err := c.invoke(ctx, QuerySpellsFullMethodName, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReloadCatalog asks the server to rebuild its catalog
func (c *Client) ReloadCatalog(ctx context.Context, req *ReloadCatalogRequest) (*ReloadCatalogResponse, error) {
	out := &ReloadCatalogResponse{}
	if err := c.invoke(ctx, ReloadCatalogFullMethodName, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CatalogStats fetches per-facet counts
func (c *Client) CatalogStats(ctx context.Context, req *CatalogStatsRequest) (*CatalogStatsResponse, error) {
	out := &CatalogStatsResponse{}
	if err := c.invoke(ctx, CatalogStatsFullMethodName, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) invoke(ctx context.Context, method string, req, out any) error {
	in, err := ToStruct(req)
	if err != nil {
		return err
	}

	resp := &structpb.Struct{}
	if err := c.cc.Invoke(ctx, method, in, resp); err != nil {
		return errors.FromGRPCError(err)
	}

	return decodeStruct(resp, out, false)
}
