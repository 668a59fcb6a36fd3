package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi/types"
	"github.com/rs/zerolog"

	"aws-dashboard-project/model"
)

// resourcesPerPage is the page size requested from the tagging API.
const resourcesPerPage = 50

// TaggingAPI is the slice of the Resource Groups Tagging API the
// discovery stage needs. Satisfied by *resourcegroupstaggingapi.Client.
type TaggingAPI interface {
	GetResources(ctx context.Context, params *resourcegroupstaggingapi.GetResourcesInput, optFns ...func(*resourcegroupstaggingapi.Options)) (*resourcegroupstaggingapi.GetResourcesOutput, error)
}

// Discovery crawls the tagging API for all resources carrying a tag.
type Discovery struct {
	client TaggingAPI
	logger zerolog.Logger
}

func NewDiscovery(client TaggingAPI, logger zerolog.Logger) *Discovery {
	return &Discovery{client: client, logger: logger}
}

// Discover returns every resource-to-tag mapping whose tagKey tag matches
// tagValue, following pagination until the backend stops returning a
// token. Pages with zero mappings are fine and do not end the crawl. Any
// backend error aborts with a DiscoveryError; there is no local retry.
func (d *Discovery) Discover(ctx context.Context, tagKey, tagValue string) ([]model.ResourceTagMapping, error) {
	var mappings []model.ResourceTagMapping
	var token *string
	pages := 0

	for {
		input := &resourcegroupstaggingapi.GetResourcesInput{
			TagFilters: []types.TagFilter{
				{Key: aws.String(tagKey), Values: []string{tagValue}},
			},
			ResourcesPerPage: aws.Int32(resourcesPerPage),
			PaginationToken:  token,
		}

		out, err := d.client.GetResources(ctx, input)
		if err != nil {
			d.logger.Err(err).Msgf("📊 Dashboard Sync: tag discovery failed on page %d", pages+1)
			return nil, &model.DiscoveryError{Err: err}
		}
		pages++

		for _, m := range out.ResourceTagMappingList {
			mapping := model.ResourceTagMapping{ResourceARN: aws.ToString(m.ResourceARN)}
			for _, tag := range m.Tags {
				mapping.Tags = append(mapping.Tags, model.Tag{
					Key:   aws.ToString(tag.Key),
					Value: aws.ToString(tag.Value),
				})
			}
			mappings = append(mappings, mapping)
		}

		// The SDK signals the last page with a nil or empty token.
		if out.PaginationToken == nil || aws.ToString(out.PaginationToken) == "" {
			break
		}
		token = out.PaginationToken
	}

	d.logger.Info().Msgf("📊 Dashboard Sync: discovered %d resources tagged %s=%s across %d pages", len(mappings), tagKey, tagValue, pages)
	return mappings, nil
}
