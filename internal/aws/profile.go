package aws

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	pkgtypes "github.com/vietdv277/vpcfinder/pkg/types"
)

var (
	credentialsSectionRe = regexp.MustCompile(`^\[([^\]]+)\]$`)
	configSectionRe      = regexp.MustCompile(`^\[profile\s+([^\]]+)\]$`)
	configDefaultRe      = regexp.MustCompile(`^\[default\]$`)
	regionRe             = regexp.MustCompile(`^\s*region\s*=\s*(.+)$`)
)

// ListProfiles reads AWS profiles from ~/.aws/credentials and ~/.aws/config
func ListProfiles() ([]pkgtypes.AWSProfile, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return ListProfilesIn(filepath.Join(home, ".aws"))
}

// ListProfilesIn reads the credentials and config files under dir.
// Missing files are skipped; "default" sorts first, the rest by name.
func ListProfilesIn(dir string) ([]pkgtypes.AWSProfile, error) {
	profileMap := make(map[string]*pkgtypes.AWSProfile)

	credProfiles, err := parseINIFile(filepath.Join(dir, "credentials"), "credentials", false)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	for i := range credProfiles {
		profileMap[credProfiles[i].Name] = &credProfiles[i]
	}

	configProfiles, err := parseINIFile(filepath.Join(dir, "config"), "config", true)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	for i := range configProfiles {
		p := &configProfiles[i]
		existing, ok := profileMap[p.Name]
		if !ok {
			// SSO and assume-role profiles only live in config
			profileMap[p.Name] = p
			continue
		}
		if existing.Region == "" {
			existing.Region = p.Region
		}
	}

	profiles := make([]pkgtypes.AWSProfile, 0, len(profileMap))
	for _, p := range profileMap {
		profiles = append(profiles, *p)
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].Name == "default" {
			return true
		}
		if profiles[j].Name == "default" {
			return false
		}
		return profiles[i].Name < profiles[j].Name
	})

	return profiles, nil
}

// ValidateProfile checks if a profile exists
func ValidateProfile(name string) bool {
	profiles, err := ListProfiles()
	if err != nil {
		return false
	}
	return hasProfile(profiles, name)
}

func hasProfile(profiles []pkgtypes.AWSProfile, name string) bool {
	for _, p := range profiles {
		if p.Name == name {
			return true
		}
	}
	return false
}

// parseINIFile parses an AWS INI-style config file
func parseINIFile(path, source string, isConfigFile bool) ([]pkgtypes.AWSProfile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var profiles []pkgtypes.AWSProfile
	var current *pkgtypes.AWSProfile

	start := func(name string) {
		if current != nil {
			profiles = append(profiles, *current)
		}
		current = &pkgtypes.AWSProfile{Name: strings.TrimSpace(name), Source: source}
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if isConfigFile {
			if configDefaultRe.MatchString(line) {
				start("default")
				continue
			}
			if m := configSectionRe.FindStringSubmatch(line); len(m) == 2 {
				start(m[1])
				continue
			}
			// [sso-session x], [services x] and friends are not profiles
			if strings.HasPrefix(line, "[") {
				if current != nil {
					profiles = append(profiles, *current)
				}
				current = nil
				continue
			}
		} else if m := credentialsSectionRe.FindStringSubmatch(line); len(m) == 2 {
			start(m[1])
			continue
		}

		if current != nil {
			if m := regionRe.FindStringSubmatch(line); len(m) == 2 {
				current.Region = strings.TrimSpace(m[1])
			}
		}
	}

	if current != nil {
		profiles = append(profiles, *current)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}
