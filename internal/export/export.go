package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/amberleaf/menuforge/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// ItemRecord is the flattened analytics row for one catalog item.
type ItemRecord struct {
	Venue         string `json:"venue" parquet:"name=venue, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	MenuName      string `json:"menu_name" parquet:"name=menu_name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CategoryName  string `json:"category_name" parquet:"name=category_name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ItemID        string `json:"item_id" parquet:"name=item_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name          string `json:"name" parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Description   string `json:"description" parquet:"name=description, type=BYTE_ARRAY, convertedtype=UTF8"`
	Price         int32  `json:"price" parquet:"name=price, type=INT32"`
	Price60ml     int32  `json:"price60ml" parquet:"name=price60ml, type=INT32"`
	BottlePrice   int32  `json:"bottle_price" parquet:"name=bottle_price, type=INT32"`
	CategoryKey   string `json:"category_key" parquet:"name=category_key, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Dietary       string `json:"dietary" parquet:"name=dietary, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	SpiceLevel    int32  `json:"spice_level" parquet:"name=spice_level, type=INT32"`
	IsRecommended bool   `json:"is_recommended" parquet:"name=is_recommended, type=BOOLEAN"`
	IsChefSpecial bool   `json:"is_chef_special" parquet:"name=is_chef_special, type=BOOLEAN"`
	IsAvailable   bool   `json:"is_available" parquet:"name=is_available, type=BOOLEAN"`
	Allergens     string `json:"allergens" parquet:"name=allergens, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// Flatten turns the loaded catalog into analytics rows, preserving
// catalog order.
func Flatten(menus []*models.Menu) []ItemRecord {
	var records []ItemRecord
	for _, menu := range menus {
		for _, cat := range menu.Categories {
			for _, item := range cat.Items {
				records = append(records, ItemRecord{
					Venue:         menu.Venue,
					MenuName:      menu.Name,
					CategoryName:  cat.Name,
					ItemID:        item.ID,
					Name:          item.Name,
					Description:   item.Description,
					Price:         int32(item.Price),
					Price60ml:     int32(item.Price60ml),
					BottlePrice:   int32(item.BottlePrice),
					CategoryKey:   item.Category,
					Dietary:       strings.Join(item.Dietary, ","),
					SpiceLevel:    int32(item.SpiceLevel),
					IsRecommended: item.IsRecommended,
					IsChefSpecial: item.IsChefSpecial,
					IsAvailable:   item.IsAvailable,
					Allergens:     strings.Join(item.Allergens, ","),
				})
			}
		}
	}
	return records
}

// Sink receives flattened records and persists them in one format.
type Sink interface {
	WriteRecord(rec ItemRecord) error
	Close() error
}

// NewSink builds the sink for the configured output format, writing
// into outputPath/outputFolder.
func NewSink(cfg *models.Config) (Sink, error) {
	dir := filepath.Join(cfg.OutputPath, cfg.OutputFolder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output folder: %w", err)
	}

	switch cfg.OutputFormat {
	case "json":
		return NewJSONSink(filepath.Join(dir, "catalog.json"))
	case "csv":
		return NewCSVSink(filepath.Join(dir, "catalog.csv"))
	case "parquet":
		return NewParquetSink(filepath.Join(dir, "catalog.parquet"))
	default:
		return nil, fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
}

// JSONSink writes newline-delimited JSON.
type JSONSink struct {
	file *os.File
}

func NewJSONSink(path string) (*JSONSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return &JSONSink{file: file}, nil
}

func (s *JSONSink) WriteRecord(rec ItemRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := s.file.Write(data); err != nil {
		return err
	}
	_, err = s.file.WriteString("\n")
	return err
}

func (s *JSONSink) Close() error {
	return s.file.Close()
}

var csvHeaders = []string{
	"venue", "menu_name", "category_name", "item_id", "name",
	"description", "price", "price60ml", "bottle_price", "category_key",
	"dietary", "spice_level", "is_recommended", "is_chef_special",
	"is_available", "allergens",
}

// CSVSink writes one CSV file with a fixed header row.
type CSVSink struct {
	file   *os.File
	writer *csv.Writer
}

func NewCSVSink(path string) (*CSVSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	w := csv.NewWriter(file)
	if err := w.Write(csvHeaders); err != nil {
		file.Close()
		return nil, err
	}
	return &CSVSink{file: file, writer: w}, nil
}

func (s *CSVSink) WriteRecord(rec ItemRecord) error {
	row := []string{
		rec.Venue, rec.MenuName, rec.CategoryName, rec.ItemID, rec.Name,
		rec.Description,
		strconv.Itoa(int(rec.Price)),
		strconv.Itoa(int(rec.Price60ml)),
		strconv.Itoa(int(rec.BottlePrice)),
		rec.CategoryKey, rec.Dietary,
		strconv.Itoa(int(rec.SpiceLevel)),
		strconv.FormatBool(rec.IsRecommended),
		strconv.FormatBool(rec.IsChefSpecial),
		strconv.FormatBool(rec.IsAvailable),
		rec.Allergens,
	}
	return s.writer.Write(row)
}

func (s *CSVSink) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}

// ParquetSink writes one parquet file using the record schema.
type ParquetSink struct {
	file   source.ParquetFile
	writer *writer.ParquetWriter
}

func NewParquetSink(path string) (*ParquetSink, error) {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create local file writer: %w", err)
	}
	pw, err := writer.NewParquetWriter(fw, new(ItemRecord), 4)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to create parquet writer: %w", err)
	}
	return &ParquetSink{file: fw, writer: pw}, nil
}

func (s *ParquetSink) WriteRecord(rec ItemRecord) error {
	if err := s.writer.Write(rec); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

func (s *ParquetSink) Close() error {
	if err := s.writer.WriteStop(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
