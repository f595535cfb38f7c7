package processor

import (
	"context"

	"github.com/rheadsz/voice-ai-agent/internal/observability"

	"github.com/tidwall/gjson"
)

// IntentReport is the structured view of a provider intent webhook. It is
// logged and discarded; durable storage of reports is a collaborator that
// does not exist yet.
type IntentReport struct {
	Intent     string
	Confidence float64
	Phone      string
	OwnerName  string
	Address    string
}

type IntentProcessor struct {
	logger *observability.Logger
}

func New(logger *observability.Logger) IntentProcessor {
	return IntentProcessor{
		logger: logger,
	}
}

// ReportIntent extracts the intent report from a raw provider webhook body
// and logs it. The payload shape is controlled by the provider, so every
// lookup tolerates absent keys at every level; a missing field degrades to
// its zero value and the report is still accepted.
func (p *IntentProcessor) ReportIntent(ctx context.Context, body []byte) IntentReport {
	report := extractReport(body)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "intent", Value: report.Intent},
		observability.Field{Key: "confidence", Value: report.Confidence},
		observability.Field{Key: "phone", Value: report.Phone},
		observability.Field{Key: "owner_name", Value: report.OwnerName},
		observability.Field{Key: "address", Value: report.Address},
	)
	p.logger.Info(ctx, "Intent detected")

	return report
}

func extractReport(body []byte) IntentReport {
	var report IntentReport

	// Only the first tool call carries the intent arguments.
	args := gjson.GetBytes(body, "message.toolCalls.0.function.arguments")
	if args.Type == gjson.String {
		// Some providers double-encode arguments as a JSON string.
		args = gjson.Parse(args.String())
	}
	report.Intent = args.Get("intent").String()
	report.Confidence = args.Get("confidence").Float()

	call := gjson.GetBytes(body, "message.call")
	report.Phone = call.Get("customer.number").String()

	variableValues := call.Get("assistantOverrides.variableValues")
	report.OwnerName = variableValues.Get("owner_name").String()
	report.Address = variableValues.Get("address").String()

	return report
}
