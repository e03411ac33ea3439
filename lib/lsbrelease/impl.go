package lsbrelease

import (
	"gopkg.in/ini.v1"
)

func load(filename string) (*Release, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		KeyValueDelimiters:      "=",
		SkipUnrecognizableLines: true,
	}, filename)
	if err != nil {
		return nil, err
	}
	section := file.Section(ini.DefaultSection)
	release := &Release{
		Filename: filename,
		keys:     section.KeyStrings(),
		values:   make(map[string]string, len(section.Keys())),
	}
	for _, key := range section.Keys() {
		release.values[key.Name()] = key.String()
	}
	return release, nil
}
