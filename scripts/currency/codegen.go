package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"
)

type currency struct {
	Name            string
	Code            string
	Symbol          string
	Acronym         string
	Decimals        int
	DisplayDecimals int
	MinDisplayValue int64
	MaxDisplayValue int64
	UnderflowLabel  string
	OverflowLabel   string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of currency objects
	currs, err := convertDataToCurrencies(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the currency objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

func convertDataToCurrencies(data [][]string) ([]currency, error) {
	// XXX keeps index 0 so that the zero value of Currency is unknown
	sort.SliceStable(data, func(i, j int) bool {
		a, b := data[i][1], data[j][1]
		switch {
		case a == "XXX":
			return b != "XXX"
		case b == "XXX":
			return false
		}
		return a < b
	})

	currs := make([]currency, 0, len(data))
	for _, rec := range data {
		curr, err := convertRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("currency %v: %w", rec[1], err)
		}
		currs = append(currs, curr)
	}
	return currs, nil
}

func convertRecord(rec []string) (currency, error) {
	if len(rec) != 10 {
		return currency{}, fmt.Errorf("want 10 fields, got %v", len(rec))
	}
	decimals, err := strconv.Atoi(rec[4])
	if err != nil {
		return currency{}, err
	}
	display, err := strconv.Atoi(rec[5])
	if err != nil {
		return currency{}, err
	}
	if display < 0 || display > decimals {
		return currency{}, fmt.Errorf("display decimals %v must be within [0, %v]", display, decimals)
	}
	minValue, err := strconv.ParseInt(rec[6], 10, 64)
	if err != nil {
		return currency{}, err
	}
	maxValue, err := strconv.ParseInt(rec[7], 10, 64)
	if err != nil {
		return currency{}, err
	}
	return currency{
		Name:            rec[0],
		Code:            rec[1],
		Symbol:          rec[2],
		Acronym:         rec[3],
		Decimals:        decimals,
		DisplayDecimals: display,
		MinDisplayValue: minValue,
		MaxDisplayValue: maxValue,
		UnderflowLabel:  rec[8],
		OverflowLabel:   rec[9],
	}, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
