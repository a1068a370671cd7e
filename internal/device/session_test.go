package device

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-cam-scan/internal/adapter"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/mock"
	"github.com/MKhiriev/go-cam-scan/internal/store"
	"github.com/MKhiriev/go-cam-scan/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testDeviceInfo = models.DeviceInfo{Manufacturer: "Sim", Model: "S1", SerialNumber: "SN1"}

func fsCategories() models.CommandCategories {
	return models.CommandCategories(0).With(models.FilesystemAccess)
}

// openSession expects the handshake calls and opens a session over them.
func openSession(t *testing.T, adp *mock.MockDeviceAdapter, cache store.ThumbnailRepository, storages []models.StorageInfo) *Session {
	t.Helper()
	gomock.InOrder(
		adp.EXPECT().DeviceInfo(gomock.Any()).Return(testDeviceInfo, nil),
		adp.EXPECT().CommandCategories(gomock.Any()).Return(fsCategories(), nil),
		adp.EXPECT().StorageDevices(gomock.Any()).Return(storages, nil),
	)

	s, err := Open(context.Background(), adp, cache, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func singleRoot() []models.StorageInfo {
	return []models.StorageInfo{{ID: "sd1", Description: "Card 1", RootFolderID: "sd1:/"}}
}

// ── Open ─────────────────────────────────────────────────────────────────────

func TestOpen_ReadsDeviceState(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)

	s := openSession(t, adp, nil, []models.StorageInfo{
		{ID: "sd1", Description: "Card 1", RootFolderID: "sd1:/", Catalog: &models.CatalogInfo{FolderCount: 4}},
		{ID: "sd2", Description: "Unformatted"},
	})

	assert.Equal(t, testDeviceInfo, s.Info())
	assert.Equal(t, "SN1", s.CacheKey())
	assert.True(t, s.CommandCategories().Contains(models.FilesystemAccess))

	storages := s.StorageDevices()
	require.Len(t, storages, 2)

	assert.Equal(t, "sd1", storages[0].ID())
	assert.Equal(t, "Card 1", storages[0].Description())
	require.NotNil(t, storages[0].RootFolder())
	assert.Equal(t, "sd1:/", storages[0].RootFolder().ID())
	assert.Nil(t, storages[0].RootFolder().Children())
	assert.NotNil(t, storages[0].CatalogProgress())

	assert.Nil(t, storages[1].RootFolder())
	assert.Nil(t, storages[1].CatalogProgress())
}

func TestOpen_CacheKeyFallsBackToAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)

	adp.EXPECT().DeviceInfo(gomock.Any()).Return(models.DeviceInfo{Model: "S1"}, nil)
	adp.EXPECT().Address().Return("http://10.0.0.9:8080")
	adp.EXPECT().CommandCategories(gomock.Any()).Return(fsCategories(), nil)
	adp.EXPECT().StorageDevices(gomock.Any()).Return(nil, nil)

	s, err := Open(context.Background(), adp, nil, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "http://10.0.0.9:8080", s.CacheKey())
}

func TestOpen_HandshakeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)

	adp.EXPECT().DeviceInfo(gomock.Any()).Return(models.DeviceInfo{}, adapter.ErrDeviceBusy)

	s, err := Open(context.Background(), adp, nil, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, adapter.ErrDeviceBusy)
}

func TestSession_RefreshCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	s := openSession(t, adp, nil, singleRoot())

	adp.EXPECT().CommandCategories(gomock.Any()).
		Return(models.CommandCategories(0).With(models.RemoteShooting), nil)

	require.NoError(t, s.RefreshCategories(context.Background()))
	assert.False(t, s.CommandCategories().Contains(models.FilesystemAccess))
}

func TestSession_ReloadGivesFreshHandles(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	s := openSession(t, adp, nil, singleRoot())

	oldRoot := s.StorageDevices()[0].RootFolder()
	adp.EXPECT().ListChildren(gomock.Any(), "sd1:/").Return(nil, nil)
	require.NoError(t, oldRoot.LoadChildren(context.Background()))

	adp.EXPECT().CommandCategories(gomock.Any()).Return(fsCategories(), nil)
	adp.EXPECT().StorageDevices(gomock.Any()).Return(singleRoot(), nil)
	require.NoError(t, s.Reload(context.Background()))

	newRoot := s.StorageDevices()[0].RootFolder()
	assert.NotSame(t, oldRoot, newRoot)
	assert.Nil(t, newRoot.Children())
	assert.NotNil(t, oldRoot.Children())
}

// ── LoadChildren ─────────────────────────────────────────────────────────────

func TestLoadChildren_OnceOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	s := openSession(t, adp, nil, []models.StorageInfo{
		{ID: "sd1", Description: "Card 1", RootFolderID: "sd1:/", Catalog: &models.CatalogInfo{FolderCount: 2}},
	})

	adp.EXPECT().ListChildren(gomock.Any(), "sd1:/").Return([]models.ItemInfo{
		{ID: "sd1:/DCIM", StorageID: "sd1", Name: "DCIM", IsFolder: true, MetadataLoaded: true},
		{ID: "sd1:/a.jpg", StorageID: "sd1"},
	}, nil).Times(1)

	storage := s.StorageDevices()[0]
	root := storage.RootFolder()

	require.NoError(t, root.LoadChildren(context.Background()))
	require.NoError(t, root.LoadChildren(context.Background()))

	children := root.Children()
	require.Len(t, children, 2)
	_, isFolder := children[0].(Folder)
	assert.True(t, isFolder)
	_, isFolder = children[1].(Folder)
	assert.False(t, isFolder)
	assert.False(t, children[1].MetadataLoaded())

	assert.InDelta(t, 0.5, storage.CatalogProgress().Fraction(), 1e-9)
}

func TestLoadChildren_ConcurrentCallersShareOneListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	s := openSession(t, adp, nil, singleRoot())

	adp.EXPECT().ListChildren(gomock.Any(), "sd1:/").
		DoAndReturn(func(context.Context, string) ([]models.ItemInfo, error) {
			time.Sleep(5 * time.Millisecond)
			return []models.ItemInfo{{ID: "sd1:/a.jpg"}}, nil
		}).Times(1)

	root := s.StorageDevices()[0].RootFolder()

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, root.LoadChildren(context.Background()))
		}()
	}
	wg.Wait()

	assert.Len(t, root.Children(), 1)
}

func TestLoadChildren_ErrorLeavesFolderUnloaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	s := openSession(t, adp, nil, singleRoot())

	root := s.StorageDevices()[0].RootFolder()

	adp.EXPECT().ListChildren(gomock.Any(), "sd1:/").Return(nil, adapter.ErrIncorrectCommandCategory)
	err := root.LoadChildren(context.Background())
	assert.ErrorIs(t, err, adapter.ErrIncorrectCommandCategory)
	assert.Nil(t, root.Children())

	adp.EXPECT().ListChildren(gomock.Any(), "sd1:/").Return([]models.ItemInfo{}, nil)
	require.NoError(t, root.LoadChildren(context.Background()))
	assert.NotNil(t, root.Children())
	assert.Empty(t, root.Children())
}

func TestLoadChildren_EmptyFolderIsLoadedNotNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	s := openSession(t, adp, nil, singleRoot())
	root := s.StorageDevices()[0].RootFolder()

	assert.Nil(t, root.Children())

	adp.EXPECT().ListChildren(gomock.Any(), "sd1:/").Return([]models.ItemInfo{}, nil)
	require.NoError(t, root.LoadChildren(context.Background()))

	children := root.Children()
	require.NotNil(t, children)
	assert.Empty(t, children)
}

func TestLoadChildren_CancelledBeforeRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	s := openSession(t, adp, nil, singleRoot())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.StorageDevices()[0].RootFolder().LoadChildren(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

// ── LoadMetadata ─────────────────────────────────────────────────────────────

func loadedRootItem(t *testing.T, adp *mock.MockDeviceAdapter, s *Session, info models.ItemInfo) Item {
	t.Helper()
	adp.EXPECT().ListChildren(gomock.Any(), "sd1:/").Return([]models.ItemInfo{info}, nil)
	root := s.StorageDevices()[0].RootFolder()
	require.NoError(t, root.LoadChildren(context.Background()))
	return root.Children()[0]
}

func TestLoadMetadata_OnceOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	s := openSession(t, adp, nil, singleRoot())
	item := loadedRootItem(t, adp, s, models.ItemInfo{ID: "sd1:/a.jpg", StorageID: "sd1"})

	created := time.Date(2023, 7, 14, 18, 5, 0, 0, time.UTC)
	adp.EXPECT().LoadMetadata(gomock.Any(), "sd1:/a.jpg").Return(models.ItemInfo{
		ID:             "sd1:/a.jpg",
		Name:           "a.jpg",
		CreatedAt:      &created,
		MetadataLoaded: true,
		KnownImageType: true,
	}, nil).Times(1)

	require.NoError(t, item.LoadMetadata(context.Background()))
	require.NoError(t, item.LoadMetadata(context.Background()))

	assert.True(t, item.MetadataLoaded())
	assert.True(t, item.IsKnownImageType())
	assert.Equal(t, "a.jpg", item.Name())
	got, ok := item.CreatedAt()
	assert.True(t, ok)
	assert.Equal(t, created, got)
}

func TestLoadMetadata_AlreadyLoadedSkipsRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	s := openSession(t, adp, nil, singleRoot())
	item := loadedRootItem(t, adp, s, models.ItemInfo{ID: "sd1:/a.jpg", Name: "a.jpg", MetadataLoaded: true})

	// no LoadMetadata expectation: any call fails the test
	require.NoError(t, item.LoadMetadata(context.Background()))
	_, ok := item.CreatedAt()
	assert.False(t, ok)
}

func TestLoadMetadata_PartialResponseKeepsUnloaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	s := openSession(t, adp, nil, singleRoot())
	item := loadedRootItem(t, adp, s, models.ItemInfo{ID: "sd1:/a.jpg"})

	adp.EXPECT().LoadMetadata(gomock.Any(), "sd1:/a.jpg").Return(models.ItemInfo{ID: "sd1:/a.jpg", Name: "x"}, nil)

	require.NoError(t, item.LoadMetadata(context.Background()))
	assert.False(t, item.MetadataLoaded())
	assert.Empty(t, item.Name())
}

func TestLoadMetadata_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	s := openSession(t, adp, nil, singleRoot())
	item := loadedRootItem(t, adp, s, models.ItemInfo{ID: "sd1:/a.jpg"})

	adp.EXPECT().LoadMetadata(gomock.Any(), "sd1:/a.jpg").Return(models.ItemInfo{}, adapter.ErrNotFound)

	err := item.LoadMetadata(context.Background())
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.False(t, item.MetadataLoaded())
}

// ── FetchThumbnail ───────────────────────────────────────────────────────────

func TestFetchThumbnail_PreflightRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	cache := mock.NewMockThumbnailRepository(ctrl)
	s := openSession(t, adp, cache, singleRoot())
	item := loadedRootItem(t, adp, s, models.ItemInfo{ID: "sd1:/a.jpg"})

	var seen Item
	data, err := item.FetchThumbnail(context.Background(), func(it Item) bool {
		seen = it
		return false
	})

	assert.ErrorIs(t, err, ErrPreflightRejected)
	assert.Nil(t, data)
	assert.Equal(t, "sd1:/a.jpg", seen.ID())
}

func TestFetchThumbnail_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	cache := mock.NewMockThumbnailRepository(ctrl)
	s := openSession(t, adp, cache, singleRoot())
	item := loadedRootItem(t, adp, s, models.ItemInfo{ID: "sd1:/a.jpg"})

	cache.EXPECT().GetThumbnail(gomock.Any(), "SN1", "sd1:/a.jpg").Return([]byte{7}, nil)

	data, err := item.FetchThumbnail(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, []byte{7}, data)
}

func TestFetchThumbnail_CacheMissFetchesAndSaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	cache := mock.NewMockThumbnailRepository(ctrl)
	s := openSession(t, adp, cache, singleRoot())
	item := loadedRootItem(t, adp, s, models.ItemInfo{ID: "sd1:/a.jpg"})

	gomock.InOrder(
		cache.EXPECT().GetThumbnail(gomock.Any(), "SN1", "sd1:/a.jpg").Return(nil, store.ErrThumbnailNotFound),
		adp.EXPECT().FetchThumbnail(gomock.Any(), "sd1:/a.jpg").Return([]byte{1, 2}, nil),
		cache.EXPECT().SaveThumbnail(gomock.Any(), "SN1", "sd1:/a.jpg", []byte{1, 2}).Return(errors.New("disk full")),
	)

	data, err := item.FetchThumbnail(context.Background(), func(Item) bool { return true })

	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, data)
}

func TestFetchThumbnail_RemoteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	s := openSession(t, adp, nil, singleRoot())
	item := loadedRootItem(t, adp, s, models.ItemInfo{ID: "sd1:/a.cr2"})

	adp.EXPECT().FetchThumbnail(gomock.Any(), "sd1:/a.cr2").Return(nil, adapter.ErrNoThumbnail)

	_, err := item.FetchThumbnail(context.Background(), nil)

	assert.ErrorIs(t, err, adapter.ErrNoThumbnail)
}

func TestSession_CloseFailsLaterCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	adp := mock.NewMockDeviceAdapter(ctrl)
	s := openSession(t, adp, nil, singleRoot())
	root := s.StorageDevices()[0].RootFolder()

	s.Close()

	assert.Error(t, root.LoadChildren(context.Background()))
}
