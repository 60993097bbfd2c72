package testutil

import (
	"bufio"
	"encoding/json"
	"fmt"
	"github.com/lsulibraries/ldlpost/models"
	"io"
	"os"
	"strings"
)

// FindDerivedFieldsInLog returns the derived fields logged for the
// object with the specified subject URI. If the object was logged
// more than once, this returns the last entry.
func FindDerivedFieldsInLog(pathToLogFile, subject string) (fields *models.DerivedFields, err error) {
	file, err := os.Open(pathToLogFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	jsonString := findJsonString(file, subject)
	if len(jsonString) == 0 {
		err = fmt.Errorf("Object %s not found in %s", subject, pathToLogFile)
	} else {
		fields = &models.DerivedFields{}
		err = json.Unmarshal([]byte(jsonString), fields)
	}
	return fields, err
}

// CountEntriesInLog returns the number of objects logged in the
// JSON log.
func CountEntriesInLog(pathToLogFile string) (int, error) {
	file, err := os.Open(pathToLogFile)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	count := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "-------- BEGIN ") {
			count++
		}
	}
	return count, scanner.Err()
}

func findJsonString(file io.Reader, subject string) string {
	startPrefix := fmt.Sprintf("-------- BEGIN %s |", subject)
	endPrefix := fmt.Sprintf(" -------- END %s |", subject)
	inJson := false
	jsonLines := make([]string, 0)
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		if strings.HasPrefix(line, startPrefix) {
			inJson = true
			// Replace the old with the new because we
			// only want the last known state of this object.
			jsonLines = make([]string, 0)
			continue
		} else if strings.HasPrefix(line, endPrefix) {
			inJson = false
		}
		if inJson {
			jsonLines = append(jsonLines, line)
		}
	}
	return strings.Join(jsonLines, "")
}
