package featprep

import "context"

// Transform is a mutation applied to a Dataset. Planners are not Transforms:
// they compute plans from a reference dataset. Transforms replay those
// recorded plans, so the same sequence can run on train and held-out data.
type Transform interface {
	Name() string
	Apply(ctx context.Context, d *Dataset) (*Dataset, error)
}

// Pipeline composes a sequence of Transforms.
type Pipeline struct {
	steps []Transform
}

func NewPipeline() *Pipeline { return &Pipeline{} }

func (p *Pipeline) Add(t Transform) *Pipeline {
	p.steps = append(p.steps, t)
	return p
}

func (p *Pipeline) Run(ctx context.Context, d *Dataset) (*Dataset, error) {
	var err error
	cur := d
	for _, t := range p.steps {
		cur, err = t.Apply(ctx, cur)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
