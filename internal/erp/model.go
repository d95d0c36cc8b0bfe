package erp

import "context"

// Model binds a client to one record-store model name, mirroring how
// callers think about queries (per-model search/create/write).
type Model struct {
	client *Client
	name   string
}

func NewModel(client *Client, name string) Model {
	return Model{client: client, name: name}
}

func (m Model) Name() string { return m.name }

func (m Model) Search(ctx context.Context, domain Domain, fields []string, offset, limit int, order string) ([]Record, error) {
	return m.client.SearchRead(ctx, m.name, domain, fields, offset, limit, order)
}

func (m Model) Count(ctx context.Context, domain Domain) (int, error) {
	return m.client.SearchCount(ctx, m.name, domain)
}

func (m Model) Create(ctx context.Context, values map[string]any) (int, error) {
	return m.client.Create(ctx, m.name, values)
}

func (m Model) Write(ctx context.Context, id int, values map[string]any) error {
	return m.client.Write(ctx, m.name, id, values)
}

func (m Model) Unlink(ctx context.Context, ids []int) error {
	return m.client.Unlink(ctx, m.name, ids)
}
