package influx

import (
	"fmt"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/openziti/bpool/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
)

func init() {
	influxCmd.AddCommand(influxLoadCmd)
}

var influxLoadCmd = &cobra.Command{
	Use:   "load <samplesRoot>",
	Short: "Load bench samples into InfluxDB",
	Args:  cobra.ExactArgs(1),
	Run:   influxLoad,
}

var datasets = []string{
	"spares",
	"allocations",
}

func influxLoad(_ *cobra.Command, args []string) {
	runs, err := util.DiscoverRuns(args[0])
	if err != nil {
		logrus.Fatalf("error discovering runs (%v)", err)
	}
	if len(runs) < 1 {
		logrus.Fatalf("no runs found in [%s]", args[0])
	}

	authToken := ""
	if influxDbUsername != "" || influxDbPassword != "" {
		authToken = fmt.Sprintf("%s:%s", influxDbUsername, influxDbPassword)
	}
	client := influxdb2.NewClient(influxDbUrl, authToken)
	defer client.Close()
	writeApi := client.WriteAPI("", influxDbDatabase)

	for root, runId := range runs {
		for _, dataset := range datasets {
			path := filepath.Join(root, dataset+".csv")
			if _, err := os.Stat(path); os.IsNotExist(err) {
				logrus.Warnf("no dataset [%s] for run [%s]", dataset, runId.Id)
				continue
			}
			samples, err := util.ReadSamples(path)
			if err != nil {
				logrus.Fatalf("error reading dataset [%s] (%v)", path, err)
			}
			for _, p := range points(dataset, runId, samples) {
				writeApi.WritePoint(p)
			}
			logrus.Infof("wrote [%d] points for run [%s] dataset [%s]", len(samples), runId.Id, dataset)
		}
	}
	writeApi.Flush()
}

func points(dataset string, runId *util.RunId, samples []*util.Sample) []*write.Point {
	tags := map[string]string{"run": runId.Id}
	for k, v := range runId.Values {
		tags[k] = v
	}
	out := make([]*write.Point, 0, len(samples))
	for _, sample := range samples {
		out = append(out, influxdb2.NewPoint(dataset, tags, map[string]interface{}{"v": sample.V}, sample.Ts))
	}
	return out
}
