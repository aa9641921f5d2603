package callbacks

import (
	"sync"
	"time"

	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/tool"

	"waypoint/internal/metrics"
	"waypoint/pkg/logger"
)

// toolStartTimes tracks in-flight tool calls by function call ID so the
// after-callback can compute latency. Entries are removed on completion.
var toolStartTimes sync.Map

// MetricsBeforeToolCallback records execution start time for metrics.
func MetricsBeforeToolCallback() llmagent.BeforeToolCallback {
	return func(ctx tool.Context, t tool.Tool, args map[string]any) (map[string]any, error) {
		toolStartTimes.Store(ctx.FunctionCallID(), time.Now())
		return nil, nil
	}
}

// MetricsAfterToolCallback records tool execution counters and latency.
func MetricsAfterToolCallback() llmagent.AfterToolCallback {
	return func(ctx tool.Context, t tool.Tool, args, result map[string]any, err error) (map[string]any, error) {
		if v, ok := toolStartTimes.LoadAndDelete(ctx.FunctionCallID()); ok {
			if start, ok := v.(time.Time); ok {
				metrics.ObserveToolExecution(t.Name(), time.Since(start), err)
			}
		}
		return result, err
	}
}

// AuditLogAfterToolCallback logs every tool execution outcome.
// Cross-cutting concerns live here; parameter validation is the
// responsibility of each tool implementation.
func AuditLogAfterToolCallback() llmagent.AfterToolCallback {
	return func(ctx tool.Context, t tool.Tool, args, result map[string]any, err error) (map[string]any, error) {
		log := logger.Get().With(
			"component", "tool_audit",
			"tool", t.Name(),
			"invocation", ctx.InvocationID(),
		)

		if err != nil {
			log.Errorw("tool failed", "error", err)
		} else {
			log.Infow("tool executed")
		}

		return result, err
	}
}
