package responder

// #region imports
import (
	"context"
	"fmt"

	pb "github.com/danielpatrickdp/statecraft/go-sim/gen/simpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #endregion

// #region interfaces

// Request carries one responder call: who is speaking, the identity/state
// system context, the phase prompt, and the structured shape wanted back.
type Request struct {
	Actor          string
	SystemContext  string
	Prompt         string
	ResponseSchema string
}

// Responder is the external LLM boundary. Implementations return raw text;
// parsing and validation belong to the interpret package.
type Responder interface {
	Respond(ctx context.Context, req Request) (string, error)
}

// Embedder produces embeddings for the recall index.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// #endregion interfaces

// #region client-struct

// Client wraps the gRPC connection to the LLM sidecar.
type Client struct {
	conn   *grpc.ClientConn
	client pb.ResponderServiceClient
}

// #endregion client-struct

// #region constructor

// New connects to the responder gRPC service.
func New(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewResponderServiceClient(conn),
	}, nil
}

// NewWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewWithService(svc pb.ResponderServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region respond

// Respond sends one prompt with actor context to the sidecar.
func (c *Client) Respond(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.Respond(ctx, &pb.RespondRequest{
		Actor:          req.Actor,
		SystemContext:  req.SystemContext,
		Prompt:         req.Prompt,
		ResponseSchema: req.ResponseSchema,
	})
	if err != nil {
		return "", fmt.Errorf("respond rpc: %w", err)
	}
	return resp.Text, nil
}

// #endregion respond

// #region embed

// Embed sends text to the sidecar for embedding.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.client.Embed(ctx, &pb.EmbedRequest{
		Text: text,
	})
	if err != nil {
		return nil, fmt.Errorf("embed rpc: %w", err)
	}
	return resp.Embedding, nil
}

// #endregion embed
