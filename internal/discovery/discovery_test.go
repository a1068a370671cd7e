package discovery

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-cam-scan/internal/adapter"
	"github.com/MKhiriev/go-cam-scan/internal/config"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/mock"
	"github.com/MKhiriev/go-cam-scan/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recorder struct {
	mu    sync.Mutex
	found []Found
}

func (r *recorder) add(f Found) {
	r.mu.Lock()
	r.found = append(r.found, f)
	r.mu.Unlock()
}

func (r *recorder) addresses() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.found))
	for _, f := range r.found {
		out = append(out, f.Address)
	}
	return out
}

func testConfig() config.ClientDiscovery {
	return config.ClientDiscovery{Interval: 5 * time.Millisecond, ClientName: "test"}
}

func TestDiscovery_EmitsOncePerAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	cam := mock.NewMockDeviceAdapter(ctrl)
	late := mock.NewMockDeviceAdapter(ctrl)

	info := models.DeviceInfo{Manufacturer: "Acme", Model: "X1", SerialNumber: "1"}
	cam.EXPECT().DeviceInfo(gomock.Any()).Return(info, nil).Times(1)

	// the second device answers on its third probe
	gomock.InOrder(
		late.EXPECT().DeviceInfo(gomock.Any()).Return(models.DeviceInfo{}, adapter.ErrDeviceBusy).Times(2),
		late.EXPECT().DeviceInfo(gomock.Any()).Return(models.DeviceInfo{Model: "Late"}, nil).Times(1),
	)

	adapters := map[string]adapter.DeviceAdapter{"cam:80": cam, "late:80": late}
	rec := &recorder{}
	d := New(testConfig(), []string{"cam:80", "late:80"}, func(address string) (adapter.DeviceAdapter, error) {
		return adapters[address], nil
	}, rec.add, logger.Nop())

	d.Run(context.Background())
	require.Eventually(t, func() bool { return len(rec.addresses()) == 2 }, 2*time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	d.Stop()

	assert.Equal(t, []string{"cam:80", "late:80"}, rec.addresses())
	rec.mu.Lock()
	assert.Equal(t, info, rec.found[0].Info)
	assert.Same(t, cam, rec.found[0].Adapter)
	rec.mu.Unlock()
}

func TestDiscovery_FactoryErrorSkipsAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	good := mock.NewMockDeviceAdapter(ctrl)
	good.EXPECT().DeviceInfo(gomock.Any()).Return(models.DeviceInfo{}, nil).Times(1)

	rec := &recorder{}
	d := New(testConfig(), []string{"::bad", "good:80"}, func(address string) (adapter.DeviceAdapter, error) {
		if address == "::bad" {
			return nil, errors.New("invalid address")
		}
		return good, nil
	}, rec.add, logger.Nop())

	d.Run(context.Background())
	require.Eventually(t, func() bool { return len(rec.addresses()) == 1 }, 2*time.Second, 5*time.Millisecond)
	d.Stop()

	assert.Equal(t, []string{"good:80"}, rec.addresses())
}

func TestDiscovery_StopHaltsProbing(t *testing.T) {
	ctrl := gomock.NewController(t)
	absent := mock.NewMockDeviceAdapter(ctrl)

	var mu sync.Mutex
	probes := 0
	absent.EXPECT().DeviceInfo(gomock.Any()).DoAndReturn(func(context.Context) (models.DeviceInfo, error) {
		mu.Lock()
		probes++
		mu.Unlock()
		return models.DeviceInfo{}, adapter.ErrNotFound
	}).AnyTimes()

	d := New(testConfig(), []string{"absent:80"}, func(string) (adapter.DeviceAdapter, error) {
		return absent, nil
	}, func(Found) { t.Error("nothing should be found") }, logger.Nop())

	d.Run(context.Background())
	time.Sleep(20 * time.Millisecond)
	d.Stop()

	mu.Lock()
	after := probes
	mu.Unlock()
	assert.Positive(t, after)

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, after, probes)
	mu.Unlock()
}

func TestDiscovery_StopWithoutRun(t *testing.T) {
	d := New(testConfig(), nil, nil, nil, logger.Nop())
	assert.NotPanics(t, d.Stop)
}

func TestDiscovery_ContextCancellationEndsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	absent := mock.NewMockDeviceAdapter(ctrl)
	absent.EXPECT().DeviceInfo(gomock.Any()).Return(models.DeviceInfo{}, adapter.ErrNotFound).AnyTimes()

	d := New(testConfig(), []string{"absent:80"}, func(string) (adapter.DeviceAdapter, error) {
		return absent, nil
	}, func(Found) {}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Run(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("probing goroutine did not exit")
	}
	d.Stop()
}
