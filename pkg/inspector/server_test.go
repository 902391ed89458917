package inspector_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/go-drift/bindings/pkg/bind"
	"github.com/go-drift/bindings/pkg/data"
	"github.com/go-drift/bindings/pkg/inspector"
	"github.com/go-drift/bindings/pkg/tree"
	"github.com/go-drift/bindings/pkg/widgets"
)

type noteState struct {
	Note string
}

func pumpedOwner(t *testing.T) *tree.Owner[noteState] {
	t.Helper()
	label := widgets.NewLabel[noteState]("")
	owner := tree.NewOwner[noteState](
		bind.NewHost[noteState, widgets.Label[noteState]](label, bind.Bind(
			data.Field(func(d *noteState) *string { return &d.Note }),
			widgets.LabelTextProperty[noteState](),
		)),
		noteState{Note: "inspect me"},
	)
	t.Cleanup(owner.Detach)
	owner.Pump()
	return owner
}

func TestHealthEndpoint(t *testing.T) {
	ts := httptest.NewServer(inspector.NewServer(nil).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestHostsEndpointListsAttachedHosts(t *testing.T) {
	owner := pumpedOwner(t)

	ts := httptest.NewServer(inspector.NewServer(owner).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/hosts")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var hosts []bind.HostStatus
	if err := json.NewDecoder(resp.Body).Decode(&hosts); err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, h := range hosts {
		if h.State == "twoWay" {
			found = true
		}
	}
	if !found {
		t.Fatalf("hosts = %+v, want a twoWay host", hosts)
	}
}

func TestFrameEndpointReturnsDisplayList(t *testing.T) {
	owner := pumpedOwner(t)

	ts := httptest.NewServer(inspector.NewServer(owner).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/frame")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "inspect me") {
		t.Fatalf("frame body is missing the painted text: %s", body)
	}
}

func TestFrameEndpointWithoutSourceIsUnavailable(t *testing.T) {
	ts := httptest.NewServer(inspector.NewServer(nil).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/frame")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
}

func TestMetricsEndpointExposesCounters(t *testing.T) {
	inspector.EnableMetrics()
	defer bind.SetObserver(nil)
	pumpedOwner(t)

	ts := httptest.NewServer(inspector.NewServer(nil).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "bindings_host_seeds_total") {
		t.Fatal("metrics output is missing bindings_host_seeds_total")
	}
}

func TestHostsFeedStreamsSnapshots(t *testing.T) {
	owner := pumpedOwner(t)

	srv := inspector.NewServer(owner)
	srv.SetFeedInterval(10 * time.Millisecond)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/hosts"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	var hosts []bind.HostStatus
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&hosts); err != nil {
		t.Fatal(err)
	}
	if len(hosts) == 0 {
		t.Fatal("feed delivered no hosts")
	}
}
