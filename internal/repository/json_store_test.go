package repository_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"thermostat_api/internal/models"
	"thermostat_api/internal/repository"
)

func TestJSONFileStore_SaveCreatesDirectoryAndWritesIndentedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "termostato_estado.json")
	store := repository.NewJSONFileStore(path)

	snap := repository.EncodeSnapshot(models.DefaultState(), "EXCELENTE")
	if err := store.Save(context.Background(), snap); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	want := `{
  "ambient_temperature": 20,
  "target_temperature": 24,
  "battery_charge": 5.0,
  "climate_mode": "apagado",
  "indicator": "EXCELENTE"
}
`
	if string(data) != want {
		t.Fatalf("saved file mismatch\n got: %s\nwant: %s", data, want)
	}
}

func TestJSONFileStore_RoundTrip(t *testing.T) {
	store := repository.NewJSONFileStore(filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()

	want := models.Snapshot{
		AmbientTemperature: 37,
		TargetTemperature:  16,
		BatteryCharge:      3.14,
		ClimateMode:        "enfriando",
		Indicator:          "BAJO",
	}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, found, err := store.Load(ctx)
	if err != nil || !found {
		t.Fatalf("Load() found=%v err=%v", found, err)
	}
	if got != want {
		t.Fatalf("Load()=%+v, want %+v", got, want)
	}

	exists, err := store.Exists(ctx)
	if err != nil || !exists {
		t.Fatalf("Exists()=%v err=%v", exists, err)
	}
}

func TestJSONFileStore_SaveOverwrites(t *testing.T) {
	store := repository.NewJSONFileStore(filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()

	first := repository.EncodeSnapshot(models.DefaultState(), "EXCELENTE")
	second := first
	second.AmbientTemperature = 41

	for _, s := range []models.Snapshot{first, second} {
		if err := store.Save(ctx, s); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}
	got, _, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.AmbientTemperature != 41 {
		t.Fatalf("expected latest save to win, got %+v", got)
	}

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the snapshot file, found %d entries", len(entries))
	}
}

func TestJSONFileStore_LoadMissingFile(t *testing.T) {
	store := repository.NewJSONFileStore(filepath.Join(t.TempDir(), "absent.json"))

	_, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if found {
		t.Fatalf("Load() found=true for missing file")
	}
	exists, err := store.Exists(context.Background())
	if err != nil || exists {
		t.Fatalf("Exists()=%v err=%v, want false", exists, err)
	}
}

func TestJSONFileStore_LoadMissingKeysUseDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"target_temperature": 28, "climate_mode": "calentando"}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, found, err := repository.NewJSONFileStore(path).Load(context.Background())
	if err != nil || !found {
		t.Fatalf("Load() found=%v err=%v", found, err)
	}
	want := models.Snapshot{
		AmbientTemperature: models.DefaultAmbient,
		TargetTemperature:  28,
		BatteryCharge:      models.DefaultBattery,
		ClimateMode:        "calentando",
	}
	if got != want {
		t.Fatalf("Load()=%+v, want %+v", got, want)
	}
}

func TestJSONFileStore_LoadSpanishKeyedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termostato_estado.json")
	legacy := `{
  "temperatura_ambiente": 27,
  "temperatura_deseada": 19,
  "carga_bateria": 2.8,
  "estado_climatizador": "enfriando",
  "indicador": "BAJO"
}`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, found, err := repository.NewJSONFileStore(path).Load(context.Background())
	if err != nil || !found {
		t.Fatalf("Load() found=%v err=%v", found, err)
	}
	want := models.Snapshot{
		AmbientTemperature: 27,
		TargetTemperature:  19,
		BatteryCharge:      2.8,
		ClimateMode:        "enfriando",
		Indicator:          "BAJO",
	}
	if got != want {
		t.Fatalf("Load()=%+v, want %+v", got, want)
	}
}

func TestJSONFileStore_CurrentKeysWinOverSpanish(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.json")
	mixed := `{"ambient_temperature": 21, "temperatura_ambiente": 35, "carga_bateria": 1.0}`
	if err := os.WriteFile(path, []byte(mixed), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, _, err := repository.NewJSONFileStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.AmbientTemperature != 21 || got.BatteryCharge != 1.0 || got.TargetTemperature != models.DefaultTarget {
		t.Fatalf("Load()=%+v", got)
	}
}

func TestJSONFileStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, _, err := repository.NewJSONFileStore(path).Load(context.Background())
	if !errors.Is(err, repository.ErrPersistence) {
		t.Fatalf("Load() error = %v, want ErrPersistence", err)
	}
}

func TestJSONFileStore_SaveFailsWhenParentIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	store := repository.NewJSONFileStore(filepath.Join(blocker, "state.json"))
	err := store.Save(context.Background(), repository.EncodeSnapshot(models.DefaultState(), "EXCELENTE"))
	if !errors.Is(err, repository.ErrPersistence) {
		t.Fatalf("Save() error = %v, want ErrPersistence", err)
	}
}

func TestNewJSONFileStore_DefaultPath(t *testing.T) {
	if got := repository.NewJSONFileStore("").Path(); got != repository.DefaultJSONPath {
		t.Fatalf("Path()=%q, want %q", got, repository.DefaultJSONPath)
	}
}
