package convert

import (
	"fmt"

	"txt2html/internal/config"
	"txt2html/internal/errors"
)

// Result contains the complete outcome of converting a single document.
// This structure provides everything the logger needs for reporting:
// the resolved paths, size accounting, and the self-overwrite condition.
type Result struct {
	SourcePath    string
	DestPath      string
	LineBreaks    int
	OriginalSize  int64
	NewSize       int64
	SelfOverwrite bool
	Modified      bool
}

// Stage defines a processing step in the conversion pipeline.
// This function type enables composable processing logic where each
// stage can transform the context and pass control to the next step.
type Stage func(ProcessContext) ProcessContext

// ProcessContext carries state through the conversion pipeline.
// This structure provides all necessary context for the conversion stages
// while enabling each stage to record results and surface errors.
type ProcessContext struct {
	Config     *config.Config
	SourcePath string
	Content    []byte
	Result     *Result
	Error      error
}

// Engine orchestrates the conversion using a staged pipeline.
// This design keeps validation, transformation, and path derivation as
// separate steps while maintaining a single pass over the context.
type Engine struct {
	config *config.Config
	stages []Stage
}

// NewEngine creates an engine with the standard pipeline: input validation,
// marker insertion, destination derivation, and output validation, in that
// order.
func NewEngine(cfg *config.Config) *Engine {
	engine := &Engine{
		config: cfg,
		stages: []Stage{},
	}

	engine.Use(validateInputStage)
	engine.Use(insertMarkersStage)
	engine.Use(deriveDestStage)
	engine.Use(validateOutputStage)

	return engine
}

// Use adds a stage to the processing pipeline.
// This method enables extending the engine with custom processing logic
// while maintaining the pipeline architecture.
func (e *Engine) Use(stage Stage) {
	e.stages = append(e.stages, stage)
}

// Process runs the source content through the pipeline and returns the
// conversion result together with the transformed content. An empty source
// is valid: it yields an empty destination with zero markers. The first
// stage error aborts the pipeline.
func (e *Engine) Process(sourcePath string, content []byte) (*Result, []byte, error) {
	ctx := ProcessContext{
		Config:     e.config,
		SourcePath: sourcePath,
		Content:    content,
		Result: &Result{
			SourcePath:   sourcePath,
			OriginalSize: int64(len(content)),
		},
	}

	for _, stage := range e.stages {
		ctx = stage(ctx)
		if ctx.Error != nil {
			return ctx.Result, nil, ctx.Error
		}
	}

	return ctx.Result, ctx.Content, nil
}

func validateInputStage(ctx ProcessContext) ProcessContext {
	if ctx.SourcePath == "" {
		ctx.Error = errors.NewConfigError("source path is required", nil)
	}
	return ctx
}

func insertMarkersStage(ctx ProcessContext) ProcessContext {
	ctx.Result.LineBreaks = CountLineBreaks(ctx.Content)
	ctx.Content = InsertLineBreaks(ctx.Content)
	ctx.Result.NewSize = int64(len(ctx.Content))
	ctx.Result.Modified = ctx.Result.LineBreaks > 0
	return ctx
}

func deriveDestStage(ctx ProcessContext) ProcessContext {
	if ctx.Config != nil && ctx.Config.OutputFile != "" {
		ctx.Result.DestPath = ctx.Config.OutputFile
	} else {
		ctx.Result.DestPath = DeriveDestPath(ctx.SourcePath)
	}

	ctx.Result.SelfOverwrite = ctx.Result.DestPath == ctx.SourcePath
	return ctx
}

func validateOutputStage(ctx ProcessContext) ProcessContext {
	// Invariant: the output grows by exactly len(Marker) bytes per newline.
	expected := ctx.Result.OriginalSize + int64(ctx.Result.LineBreaks*len(Marker))
	if ctx.Result.NewSize != expected {
		ctx.Error = errors.NewTransformError(ctx.SourcePath,
			fmt.Sprintf("converted size %d does not match expected %d", ctx.Result.NewSize, expected), nil)
	}
	return ctx
}
