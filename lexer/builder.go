package lexer

// Stage is a pipeline transform: a function from one token stream to
// another. Every named transform in this package (Keywords, Operators,
// Indents, ...) has this shape.
type Stage = func(Seq) Seq

// Builder assembles a token pipeline on top of the fixed scanner and
// transform stages, letting callers splice in extra stages the way the
// parser's Builder lets callers register extra grammar rules.
type Builder struct {
	before []Stage // spliced in right after the raw scanner
	after  []Stage // spliced in at the very end of the pipeline
}

// NewBuilder returns a Builder with the standard pipeline and no extra
// stages.
func NewBuilder() *Builder {
	return &Builder{}
}

// UseStage registers an extra stage. Stages registered with UseStage
// run after the fixed B1-E pipeline, in registration order; use
// UseRawStage to run one immediately after the raw scanner instead.
func (b *Builder) UseStage(stage Stage) *Builder {
	b.after = append(b.after, stage)
	return b
}

// UseRawStage registers an extra stage that runs immediately after the
// raw scanner, before keyword classification.
func (b *Builder) UseRawStage(stage Stage) *Builder {
	b.before = append(b.before, stage)
	return b
}

// Build returns the composed Lex function for this Builder's pipeline.
func (b *Builder) Build(src string) Seq {
	seq := Raw(src)
	for _, stage := range b.before {
		seq = stage(seq)
	}
	seq = Keywords(seq)
	seq = DotAtRight(seq)
	seq = DotAtLeft(seq)
	seq = Operators(seq)
	seq = FuseNotIn(seq)
	seq = Precedence(seq)
	seq = Indents(seq)
	seq = NoExpl(seq)
	seq = Invoke(seq)
	for _, stage := range b.after {
		seq = stage(seq)
	}
	return seq
}

// Lex runs the standard pipeline with no extra stages: raw scan,
// keyword and operator-keyword classification, dot-splitting, adjacency
// fusion, precedence classification, indentation resolution,
// explicit-quote normalization, and invocation inference.
func Lex(src string) Seq {
	return NewBuilder().Build(src)
}
