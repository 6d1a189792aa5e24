// file: websocket/metrics.go
package websocket

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"

	"go-ctf-event/logger"
)

// DefaultMetricsNamespace groups every metric of the event platform.
const DefaultMetricsNamespace = "CTFEvent"

// MetricsPublisher receives periodic gauges.
type MetricsPublisher interface {
	PublishConnections(count int)
	PublishSubmissions(total, correct int64)
}

var (
	_ MetricsPublisher = (*CloudWatchPublisher)(nil)
	_ MetricsPublisher = NoopPublisher{}
)

// NoopPublisher discards metrics. Used when METRICS_ENABLED is false.
type NoopPublisher struct{}

func (NoopPublisher) PublishConnections(int)          {}
func (NoopPublisher) PublishSubmissions(int64, int64) {}

// CloudWatchPublisher puts gauges into a CloudWatch namespace.
type CloudWatchPublisher struct {
	client    cloudwatchiface.CloudWatchAPI
	namespace string
	now       func() time.Time
}

// NewCloudWatchPublisher wraps an existing client.
func NewCloudWatchPublisher(client cloudwatchiface.CloudWatchAPI, namespace string) *CloudWatchPublisher {
	if namespace == "" {
		namespace = DefaultMetricsNamespace
	}
	return &CloudWatchPublisher{client: client, namespace: namespace, now: time.Now}
}

// NewDefaultCloudWatchPublisher builds a client from the standard AWS
// environment (region, credentials).
func NewDefaultCloudWatchPublisher() (*CloudWatchPublisher, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, err
	}
	return NewCloudWatchPublisher(cloudwatch.New(sess), DefaultMetricsNamespace), nil
}

// PublishConnections pushes the current WebSocket connection count.
func (p *CloudWatchPublisher) PublishConnections(count int) {
	p.putMetric("WebSocketConnections", float64(count), cloudwatch.StandardUnitCount)
}

// PublishSubmissions pushes the running submission totals.
func (p *CloudWatchPublisher) PublishSubmissions(total, correct int64) {
	p.putMetric("FlagSubmissions", float64(total), cloudwatch.StandardUnitCount)
	p.putMetric("CorrectSubmissions", float64(correct), cloudwatch.StandardUnitCount)
}

func (p *CloudWatchPublisher) putMetric(metricName string, value float64, unit string) {
	_, err := p.client.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(p.namespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Timestamp:  aws.Time(p.now()),
				Value:      aws.Float64(value),
				Unit:       aws.String(unit),
			},
		},
	})
	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
