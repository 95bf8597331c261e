package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/94107":
			w.Write([]byte(`{"post code":"94107","places":[{"place name":"San Francisco","state":"California","state abbreviation":"CA","latitude":"37.7697","longitude":"-122.3933"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := &Client{baseURL: srv.URL + "/", httpClient: &http.Client{Timeout: time.Second}}

	place, err := c.Lookup(context.Background(), "94107")
	if err != nil {
		t.Fatal(err)
	}
	if place.City != "San Francisco" || place.StateAbbr != "CA" || place.StateName != "California" {
		t.Fatalf("place=%+v", place)
	}
	if place.Latitude != 37.7697 || place.Longitude != -122.3933 {
		t.Fatalf("coords=%+v", place)
	}

	if _, err := c.Lookup(context.Background(), "00000"); !errors.Is(err, ErrZipNotFound) {
		t.Fatalf("err=%v want ErrZipNotFound", err)
	}
}

func TestStateTables(t *testing.T) {
	if StateSymbol("CA") != "🐻" || StateColor("CA") != "#FDB515" {
		t.Fatal("CA mapping wrong")
	}
	if StateSymbol("ZZ") != "🏴" || StateColor("ZZ") != "#003F87" {
		t.Fatal("fallbacks wrong")
	}
}

func TestCoordsForZip(t *testing.T) {
	sf := CoordsForZip("94107")
	if sf.City != "San Francisco" {
		t.Fatalf("sf=%+v", sf)
	}
	other := CoordsForZip("12345")
	if other.City != "ZIP 12345" || other.State != "US" {
		t.Fatalf("other=%+v", other)
	}
	if other.Latitude < 29 || other.Latitude > 50 {
		t.Fatalf("lat out of continental band: %v", other.Latitude)
	}
}
